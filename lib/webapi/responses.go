// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/schema"
	"github.com/slackwire/slackwire/lib/timestamp"
)

// Response types decode strictly: a key Slack adds to a method's
// response is reported as an unknown field. Records nested inside
// follow their own policy (see lib/schema).

// APITestResponse is api.test. Args echoes the request parameters.
type APITestResponse struct {
	Response
	Args map[string]string `json:"args,omitempty"`
}

// AuthTestResponse is auth.test.
type AuthTestResponse struct {
	Response
	URL                 string            `json:"url" validate:"required"`
	Team                string            `json:"team"`
	User                string            `json:"user"`
	TeamID              ref.TeamID        `json:"team_id" validate:"required"`
	UserID              ref.UserID        `json:"user_id" validate:"required"`
	BotID               *ref.BotID        `json:"bot_id,omitempty"`
	EnterpriseID        *ref.EnterpriseID `json:"enterprise_id,omitempty"`
	IsEnterpriseInstall bool              `json:"is_enterprise_install,omitempty"`
}

// BotsInfoResponse is bots.info.
type BotsInfoResponse struct {
	Response
	Bot schema.Bot `json:"bot" validate:"required"`
}

// HistoryResponse is the shared shape of channels.history,
// groups.history, and im.history.
type HistoryResponse struct {
	Response
	Messages  []schema.Message     `json:"messages"`
	HasMore   bool                 `json:"has_more"`
	Latest    *timestamp.Timestamp `json:"latest,omitempty"`
	IsLimited bool                 `json:"is_limited,omitempty"`
	Unread    int                  `json:"unread_count_display,omitempty"`
}

// ChannelsInfoResponse is channels.info.
type ChannelsInfoResponse struct {
	Response
	Channel schema.Channel `json:"channel" validate:"required"`
}

// ChannelsListResponse is channels.list.
type ChannelsListResponse struct {
	Response
	Channels []schema.Channel `json:"channels"`
}

// ConversationsHistoryResponse is conversations.history.
type ConversationsHistoryResponse struct {
	Response
	Messages            []schema.Message     `json:"messages"`
	HasMore             bool                 `json:"has_more"`
	PinCount            int                  `json:"pin_count"`
	IsLimited           bool                 `json:"is_limited,omitempty"`
	Latest              *timestamp.Timestamp `json:"latest,omitempty"`
	ChannelActionsTS    *timestamp.Timestamp `json:"channel_actions_ts,omitempty"`
	ChannelActionsCount int                  `json:"channel_actions_count,omitempty"`
}

// ConversationsInfoResponse is conversations.info.
type ConversationsInfoResponse struct {
	Response
	Channel schema.Conversation `json:"channel" validate:"required"`
}

// ConversationsListResponse is conversations.list.
type ConversationsListResponse struct {
	Response
	Channels []schema.Conversation `json:"channels"`
}

// ConversationsMembersResponse is conversations.members.
type ConversationsMembersResponse struct {
	Response
	Members []ref.UserID `json:"members"`
}

// ConversationsRepliesResponse is conversations.replies.
type ConversationsRepliesResponse struct {
	Response
	Messages []schema.Message `json:"messages"`
	HasMore  bool             `json:"has_more,omitempty"`
}

// ChatPostMessageResponse is chat.postMessage.
type ChatPostMessageResponse struct {
	Response
	Channel ref.ConversationID  `json:"channel" validate:"required"`
	TS      timestamp.Timestamp `json:"ts" validate:"required"`
	Message schema.Message      `json:"message" validate:"required"`
}

// ChatUpdateResponse is chat.update.
type ChatUpdateResponse struct {
	Response
	Channel ref.ConversationID  `json:"channel" validate:"required"`
	TS      timestamp.Timestamp `json:"ts" validate:"required"`
	Text    string              `json:"text"`
	Message *schema.Message     `json:"message,omitempty"`
}

// ChatDeleteResponse is chat.delete.
type ChatDeleteResponse struct {
	Response
	Channel ref.ConversationID  `json:"channel" validate:"required"`
	TS      timestamp.Timestamp `json:"ts" validate:"required"`
}

// DndInfoResponse is dnd.info. The snooze fields are set only while
// the user is snoozing.
type DndInfoResponse struct {
	Response
	DndEnabled      bool                 `json:"dnd_enabled"`
	NextDndStartTS  *timestamp.Timestamp `json:"next_dnd_start_ts,omitempty"`
	NextDndEndTS    *timestamp.Timestamp `json:"next_dnd_end_ts,omitempty"`
	SnoozeEnabled   bool                 `json:"snooze_enabled,omitempty"`
	SnoozeEndtime   *timestamp.Timestamp `json:"snooze_endtime,omitempty"`
	SnoozeRemaining int                  `json:"snooze_remaining,omitempty"`
}

// DndEndSnoozeResponse is dnd.endSnooze.
type DndEndSnoozeResponse struct {
	Response
	DndEnabled     bool                 `json:"dnd_enabled"`
	NextDndStartTS *timestamp.Timestamp `json:"next_dnd_start_ts,omitempty"`
	NextDndEndTS   *timestamp.Timestamp `json:"next_dnd_end_ts,omitempty"`
	SnoozeEnabled  bool                 `json:"snooze_enabled"`
}

// DndSetSnoozeResponse is dnd.setSnooze. SnoozeRemaining is in
// seconds.
type DndSetSnoozeResponse struct {
	Response
	SnoozeEnabled   bool                `json:"snooze_enabled"`
	SnoozeEndtime   timestamp.Timestamp `json:"snooze_endtime" validate:"required"`
	SnoozeRemaining int                 `json:"snooze_remaining"`
}

// DndTeamInfoResponse is dnd.teamInfo, keyed by user ID.
type DndTeamInfoResponse struct {
	Response
	Users map[string]schema.DndStatus `json:"users" validate:"dive"`
}

// EmojiListResponse is emoji.list. Values are image URLs or
// "alias:name".
type EmojiListResponse struct {
	Response
	Emoji   map[string]string    `json:"emoji"`
	CacheTS *timestamp.Timestamp `json:"cache_ts,omitempty"`
}

// FilesInfoResponse is files.info.
type FilesInfoResponse struct {
	Response
	File     schema.File          `json:"file" validate:"required"`
	Comments []schema.FileComment `json:"comments"`
	Paging   *schema.Paging       `json:"paging,omitempty"`
}

// FilesListResponse is files.list.
type FilesListResponse struct {
	Response
	Files  []schema.File  `json:"files"`
	Paging *schema.Paging `json:"paging,omitempty"`
}

// GroupsInfoResponse is groups.info.
type GroupsInfoResponse struct {
	Response
	Group schema.Group `json:"group" validate:"required"`
}

// GroupsListResponse is groups.list.
type GroupsListResponse struct {
	Response
	Groups []schema.Group `json:"groups"`
}

// IMListResponse is im.list.
type IMListResponse struct {
	Response
	IMs []schema.IM `json:"ims"`
}

// MPIMListResponse is mpim.list.
type MPIMListResponse struct {
	Response
	Groups []schema.MPIM `json:"groups"`
}

// PinsListResponse is pins.list.
type PinsListResponse struct {
	Response
	Items []Item `json:"items"`
	Count int    `json:"count,omitempty"`
}

// ReactionsGetResponse is reactions.get. The reacted-to object is
// inlined into the envelope and Type says which of Message, File, or
// Comment is set.
type ReactionsGetResponse struct {
	Response
	Type    string              `json:"type" validate:"required"`
	Channel *ref.ConversationID `json:"channel,omitempty"`
	Message *schema.Message     `json:"message,omitempty"`
	File    *schema.File        `json:"file,omitempty"`
	Comment *schema.FileComment `json:"comment,omitempty"`
}

// ReactionsListResponse is reactions.list.
type ReactionsListResponse struct {
	Response
	Items  []Item         `json:"items"`
	Paging *schema.Paging `json:"paging,omitempty"`
}

// RemindersInfoResponse is reminders.info.
type RemindersInfoResponse struct {
	Response
	Reminder schema.Reminder `json:"reminder" validate:"required"`
}

// RemindersListResponse is reminders.list.
type RemindersListResponse struct {
	Response
	Reminders []schema.Reminder `json:"reminders"`
}

// RTMConnectResponse is rtm.connect.
type RTMConnectResponse struct {
	Response
	Self RTMSelf `json:"self" validate:"required"`
	Team RTMTeam `json:"team" validate:"required"`
	URL  string  `json:"url" validate:"required"`
}

// RTMSelf identifies the connecting user.
type RTMSelf struct {
	ID   ref.UserID `json:"id" validate:"required"`
	Name string     `json:"name" validate:"required"`
}

// RTMTeam identifies the workspace of an RTM session.
type RTMTeam struct {
	ID             *ref.TeamID       `json:"id,omitempty"`
	Name           string            `json:"name" validate:"required"`
	Domain         string            `json:"domain,omitempty"`
	EnterpriseID   *ref.EnterpriseID `json:"enterprise_id,omitempty"`
	EnterpriseName string            `json:"enterprise_name,omitempty"`
}

// RTMStartResponse is rtm.start: a snapshot of the workspace plus the
// socket URL.
type RTMStartResponse struct {
	Response
	URL      string           `json:"url,omitempty"`
	Self     *schema.User     `json:"self,omitempty"`
	Team     *schema.Team     `json:"team,omitempty"`
	Users    []schema.User    `json:"users,omitempty"`
	Channels []schema.Channel `json:"channels,omitempty"`
	Groups   []schema.Group   `json:"groups,omitempty"`
	IMs      []schema.IM      `json:"ims,omitempty"`
	MPIMs    []schema.MPIM    `json:"mpims,omitempty"`
	Bots     []schema.Bot     `json:"bots,omitempty"`
}

// SearchResults is one section of a search response.
type SearchResults[T any] struct {
	Matches []T            `json:"matches"`
	Paging  *schema.Paging `json:"paging,omitempty"`
	Total   int            `json:"total,omitempty"`
}

// SearchAllResponse is search.all.
type SearchAllResponse struct {
	Response
	Query    string                         `json:"query,omitempty"`
	Files    *SearchResults[schema.File]    `json:"files,omitempty"`
	Messages *SearchResults[schema.Message] `json:"messages,omitempty"`
}

// SearchFilesResponse is search.files.
type SearchFilesResponse struct {
	Response
	Query string                      `json:"query,omitempty"`
	Files *SearchResults[schema.File] `json:"files,omitempty"`
}

// SearchMessagesResponse is search.messages.
type SearchMessagesResponse struct {
	Response
	Query    string                         `json:"query,omitempty"`
	Messages *SearchResults[schema.Message] `json:"messages,omitempty"`
}

// StarsListResponse is stars.list. Besides messages and files, starred
// items include whole channels, groups, and direct messages.
type StarsListResponse struct {
	Response
	Items  []Item         `json:"items"`
	Paging *schema.Paging `json:"paging,omitempty"`
}

// TeamInfoResponse is team.info.
type TeamInfoResponse struct {
	Response
	Team schema.Team `json:"team" validate:"required"`
}

// TeamProfileGetResponse is team.profile.get.
type TeamProfileGetResponse struct {
	Response
	Profile TeamProfile `json:"profile" validate:"required"`
}

// TeamProfile lists the custom profile fields a workspace defines.
type TeamProfile struct {
	Fields []TeamProfileField `json:"fields" validate:"dive"`
}

// TeamProfileField defines one custom profile field. Type is "text",
// "date", "link", "mailto", "options_list", or "user".
type TeamProfileField struct {
	ID             string            `json:"id" validate:"required"`
	Ordering       int               `json:"ordering"`
	Label          string            `json:"label" validate:"required"`
	Hint           string            `json:"hint,omitempty"`
	Type           string            `json:"type,omitempty"`
	PossibleValues []string          `json:"possible_values,omitempty"`
	Options        map[string]string `json:"options,omitempty"`
	IsHidden       bool              `json:"is_hidden,omitempty"`
}

// UsergroupsListResponse is usergroups.list.
type UsergroupsListResponse struct {
	Response
	Usergroups []schema.Usergroup `json:"usergroups"`
}

// UsersInfoResponse is users.info.
type UsersInfoResponse struct {
	Response
	User schema.User `json:"user" validate:"required"`
}

// UsersListResponse is users.list.
type UsersListResponse struct {
	Response
	Members   []schema.User        `json:"members"`
	CacheTS   *timestamp.Timestamp `json:"cache_ts,omitempty"`
	IsLimited bool                 `json:"is_limited,omitempty"`
}

// UsersProfileGetResponse is users.profile.get.
type UsersProfileGetResponse struct {
	Response
	Profile *schema.UserProfile `json:"profile,omitempty"`
}

// UsergroupsUsersListResponse is usergroups.users.list.
type UsergroupsUsersListResponse struct {
	Response
	Users []ref.UserID `json:"users"`
}

// UsergroupsUsersUpdateResponse is usergroups.users.update.
type UsergroupsUsersUpdateResponse struct {
	Response
	Usergroup schema.Usergroup `json:"usergroup" validate:"required"`
}
