// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/timestamp"
)

// Icons holds the avatar URLs Slack attaches to bots, apps, and teams.
// Each entity sends a different subset of sizes.
type Icons struct {
	Image24       string `json:"image_24,omitempty"`
	Image32       string `json:"image_32,omitempty"`
	Image34       string `json:"image_34,omitempty"`
	Image36       string `json:"image_36,omitempty"`
	Image44       string `json:"image_44,omitempty"`
	Image48       string `json:"image_48,omitempty"`
	Image64       string `json:"image_64,omitempty"`
	Image68       string `json:"image_68,omitempty"`
	Image72       string `json:"image_72,omitempty"`
	Image88       string `json:"image_88,omitempty"`
	Image96       string `json:"image_96,omitempty"`
	Image102      string `json:"image_102,omitempty"`
	Image128      string `json:"image_128,omitempty"`
	Image132      string `json:"image_132,omitempty"`
	Image192      string `json:"image_192,omitempty"`
	Image230      string `json:"image_230,omitempty"`
	Image512      string `json:"image_512,omitempty"`
	Image1024     string `json:"image_1024,omitempty"`
	ImageOriginal string `json:"image_original,omitempty"`
	ImageDefault  bool   `json:"image_default,omitempty"`
	Emoji         string `json:"emoji,omitempty"`
}

func (i *Icons) UnmarshalJSON(data []byte) error {
	type fields Icons
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*i = Icons(decoded)
	return nil
}

// Bot is a bot user as returned by bots.info and bot_changed events.
type Bot struct {
	ID      ref.BotID            `json:"id" validate:"required"`
	AppID   *ref.AppID           `json:"app_id,omitempty"`
	UserID  *ref.UserID          `json:"user_id,omitempty"`
	Name    string               `json:"name"`
	Deleted bool                 `json:"deleted,omitempty"`
	Icons   *Icons               `json:"icons,omitempty"`
	Updated *timestamp.Timestamp `json:"updated,omitempty"`
}

func (b *Bot) UnmarshalJSON(data []byte) error {
	type fields Bot
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*b = Bot(decoded)
	return nil
}

// App is a Slack app as carried by apps_changed events.
type App struct {
	ID      ref.AppID `json:"id" validate:"required"`
	Name    string    `json:"name" validate:"required"`
	Icons   *Icons    `json:"icons,omitempty"`
	Deleted bool      `json:"deleted,omitempty"`
}

// Topic is a channel's topic or purpose. Channels send last_set as a
// string timestamp, groups as integer seconds; both decode.
type Topic struct {
	Value   string               `json:"value"`
	Creator string               `json:"creator,omitempty"`
	LastSet *timestamp.Timestamp `json:"last_set,omitempty"`
}

func (t *Topic) UnmarshalJSON(data []byte) error {
	type fields Topic
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*t = Topic(decoded)
	return nil
}

// Channel is a public channel. Channel rejects unknown keys wherever
// it appears.
type Channel struct {
	ID                  ref.ChannelID        `json:"id" validate:"required"`
	Name                string               `json:"name" validate:"required"`
	NameNormalized      string               `json:"name_normalized,omitempty"`
	PreviousNames       []string             `json:"previous_names,omitempty"`
	Created             *timestamp.Timestamp `json:"created,omitempty"`
	Creator             string               `json:"creator,omitempty"`
	AcceptedUser        *ref.UserID          `json:"accepted_user,omitempty"`
	ContextTeamID       *ref.TeamID          `json:"context_team_id,omitempty"`
	IsArchived          bool                 `json:"is_archived,omitempty"`
	IsChannel           bool                 `json:"is_channel,omitempty"`
	IsGeneral           bool                 `json:"is_general,omitempty"`
	IsGroup             bool                 `json:"is_group,omitempty"`
	IsIM                bool                 `json:"is_im,omitempty"`
	IsMember            bool                 `json:"is_member,omitempty"`
	IsMoved             int                  `json:"is_moved,omitempty"`
	IsMPIM              bool                 `json:"is_mpim,omitempty"`
	IsExtShared         bool                 `json:"is_ext_shared,omitempty"`
	IsOrgShared         bool                 `json:"is_org_shared,omitempty"`
	IsPendingExtShared  bool                 `json:"is_pending_ext_shared,omitempty"`
	IsPrivate           bool                 `json:"is_private,omitempty"`
	IsReadOnly          bool                 `json:"is_read_only,omitempty"`
	IsShared            bool                 `json:"is_shared,omitempty"`
	LastRead            *timestamp.Timestamp `json:"last_read,omitempty"`
	Latest              *Message             `json:"latest,omitempty"`
	Members             []ref.UserID         `json:"members,omitempty"`
	NumMembers          int                  `json:"num_members,omitempty"`
	Priority            float64              `json:"priority,omitempty"`
	Purpose             *Topic               `json:"purpose,omitempty"`
	Topic               *Topic               `json:"topic,omitempty"`
	Unlinked            int                  `json:"unlinked,omitempty"`
	UnreadCount         int                  `json:"unread_count,omitempty"`
	UnreadCountDisplay  int                  `json:"unread_count_display,omitempty"`
	SharedTeamIDs       []ref.TeamID         `json:"shared_team_ids,omitempty"`
	PendingShared       []ref.TeamID         `json:"pending_shared,omitempty"`
	PendingConnectedIDs []ref.TeamID         `json:"pending_connected_team_ids,omitempty"`
}

func (c *Channel) UnmarshalJSON(data []byte) error {
	type fields Channel
	decoded, err := decodeRecord[fields](data, true)
	if err != nil {
		return err
	}
	*c = Channel(decoded)
	return nil
}

// Group is a private channel in the legacy groups.* API.
type Group struct {
	ID                 ref.GroupID          `json:"id" validate:"required"`
	Name               string               `json:"name" validate:"required"`
	Created            *timestamp.Timestamp `json:"created,omitempty"`
	Creator            string               `json:"creator,omitempty"`
	IsArchived         bool                 `json:"is_archived,omitempty"`
	IsGroup            bool                 `json:"is_group,omitempty"`
	IsMPIM             bool                 `json:"is_mpim,omitempty"`
	LastRead           *timestamp.Timestamp `json:"last_read,omitempty"`
	Latest             *Message             `json:"latest,omitempty"`
	Members            []ref.UserID         `json:"members,omitempty"`
	Purpose            *Topic               `json:"purpose,omitempty"`
	Topic              *Topic               `json:"topic,omitempty"`
	UnreadCount        int                  `json:"unread_count,omitempty"`
	UnreadCountDisplay int                  `json:"unread_count_display,omitempty"`
}

func (g *Group) UnmarshalJSON(data []byte) error {
	type fields Group
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*g = Group(decoded)
	return nil
}

// IM is a direct message conversation.
type IM struct {
	ID            ref.DirectMessageID  `json:"id" validate:"required"`
	User          *ref.UserID          `json:"user,omitempty"`
	Created       *timestamp.Timestamp `json:"created,omitempty"`
	IsIM          bool                 `json:"is_im,omitempty"`
	IsOrgShared   bool                 `json:"is_org_shared,omitempty"`
	IsUserDeleted bool                 `json:"is_user_deleted,omitempty"`
	Priority      float64              `json:"priority,omitempty"`
}

func (im *IM) UnmarshalJSON(data []byte) error {
	type fields IM
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*im = IM(decoded)
	return nil
}

// MPIM is a multi-party direct message. Slack models these as groups,
// so the identifier carries the group prefix.
type MPIM struct {
	ID                 ref.GroupID          `json:"id" validate:"required"`
	Name               string               `json:"name,omitempty"`
	Created            *timestamp.Timestamp `json:"created,omitempty"`
	Creator            string               `json:"creator,omitempty"`
	IsGroup            bool                 `json:"is_group,omitempty"`
	IsMPIM             bool                 `json:"is_mpim,omitempty"`
	LastRead           *timestamp.Timestamp `json:"last_read,omitempty"`
	Latest             *Message             `json:"latest,omitempty"`
	Members            []ref.UserID         `json:"members,omitempty"`
	UnreadCount        int                  `json:"unread_count,omitempty"`
	UnreadCountDisplay int                  `json:"unread_count_display,omitempty"`
}

func (m *MPIM) UnmarshalJSON(data []byte) error {
	type fields MPIM
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*m = MPIM(decoded)
	return nil
}

// Paging is the page-number pagination block of older list methods.
type Paging struct {
	Count int `json:"count,omitempty"`
	Page  int `json:"page,omitempty"`
	Pages int `json:"pages,omitempty"`
	Total int `json:"total,omitempty"`
}

func (p *Paging) UnmarshalJSON(data []byte) error {
	type fields Paging
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*p = Paging(decoded)
	return nil
}

// Reaction is one emoji reaction and who added it.
type Reaction struct {
	Name  string       `json:"name" validate:"required"`
	Count int          `json:"count,omitempty"`
	Users []ref.UserID `json:"users,omitempty"`
}

func (r *Reaction) UnmarshalJSON(data []byte) error {
	type fields Reaction
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*r = Reaction(decoded)
	return nil
}

// Reminder is a reminders.* record. Time and CompleteTS are integer
// seconds on the wire.
type Reminder struct {
	ID         ref.ReminderID       `json:"id" validate:"required"`
	Creator    *ref.UserID          `json:"creator,omitempty"`
	User       *ref.UserID          `json:"user,omitempty"`
	Text       string               `json:"text"`
	Recurring  bool                 `json:"recurring,omitempty"`
	Time       *timestamp.Timestamp `json:"time,omitempty"`
	CompleteTS *timestamp.Timestamp `json:"complete_ts,omitempty"`
}

func (r *Reminder) UnmarshalJSON(data []byte) error {
	type fields Reminder
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*r = Reminder(decoded)
	return nil
}

// Team is a workspace.
type Team struct {
	ID           ref.TeamID        `json:"id" validate:"required"`
	Name         string            `json:"name,omitempty"`
	Domain       string            `json:"domain,omitempty"`
	EmailDomain  string            `json:"email_domain,omitempty"`
	Icon         *Icons            `json:"icon,omitempty"`
	EnterpriseID *ref.EnterpriseID `json:"enterprise_id,omitempty"`
}

func (t *Team) UnmarshalJSON(data []byte) error {
	type fields Team
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*t = Team(decoded)
	return nil
}

// Usergroup is a user group ("subteam") record.
type Usergroup struct {
	ID          ref.UsergroupID      `json:"id" validate:"required"`
	TeamID      *ref.TeamID          `json:"team_id,omitempty"`
	Name        string               `json:"name,omitempty"`
	Handle      string               `json:"handle,omitempty"`
	Description string               `json:"description,omitempty"`
	AutoType    string               `json:"auto_type,omitempty"`
	IsExternal  bool                 `json:"is_external,omitempty"`
	IsUsergroup bool                 `json:"is_usergroup,omitempty"`
	CreatedBy   *ref.UserID          `json:"created_by,omitempty"`
	UpdatedBy   *ref.UserID          `json:"updated_by,omitempty"`
	DeletedBy   *ref.UserID          `json:"deleted_by,omitempty"`
	DateCreate  *timestamp.Timestamp `json:"date_create,omitempty"`
	DateUpdate  *timestamp.Timestamp `json:"date_update,omitempty"`
	DateDelete  *timestamp.Timestamp `json:"date_delete,omitempty"`
	Prefs       *UsergroupPrefs      `json:"prefs,omitempty"`
	Users       []ref.UserID         `json:"users,omitempty"`
	UserCount   int                  `json:"user_count,omitempty"`
}

func (g *Usergroup) UnmarshalJSON(data []byte) error {
	type fields Usergroup
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*g = Usergroup(decoded)
	return nil
}

// UsergroupPrefs lists a group's default channels.
type UsergroupPrefs struct {
	Channels []ref.ChannelID `json:"channels,omitempty"`
	Groups   []ref.GroupID   `json:"groups,omitempty"`
}

// Conversation is the unified channel record of the conversations.*
// methods. The Is* flags say which kind of conversation ID holds.
type Conversation struct {
	ID                 ref.ConversationID   `json:"id" validate:"required"`
	Name               string               `json:"name,omitempty"`
	NameNormalized     string               `json:"name_normalized,omitempty"`
	User               *ref.UserID          `json:"user,omitempty"`
	Created            *timestamp.Timestamp `json:"created,omitempty"`
	Creator            *ref.UserID          `json:"creator,omitempty"`
	IsArchived         bool                 `json:"is_archived,omitempty"`
	IsChannel          bool                 `json:"is_channel,omitempty"`
	IsGeneral          bool                 `json:"is_general,omitempty"`
	IsGroup            bool                 `json:"is_group,omitempty"`
	IsIM               bool                 `json:"is_im,omitempty"`
	IsMember           bool                 `json:"is_member,omitempty"`
	IsMPIM             bool                 `json:"is_mpim,omitempty"`
	IsPrivate          bool                 `json:"is_private,omitempty"`
	IsShared           bool                 `json:"is_shared,omitempty"`
	IsExtShared        bool                 `json:"is_ext_shared,omitempty"`
	IsOrgShared        bool                 `json:"is_org_shared,omitempty"`
	IsUserDeleted      bool                 `json:"is_user_deleted,omitempty"`
	LastRead           *timestamp.Timestamp `json:"last_read,omitempty"`
	Latest             *Message             `json:"latest,omitempty"`
	Members            []ref.UserID         `json:"members,omitempty"`
	NumMembers         int                  `json:"num_members,omitempty"`
	Priority           float64              `json:"priority,omitempty"`
	Purpose            *Topic               `json:"purpose,omitempty"`
	Topic              *Topic               `json:"topic,omitempty"`
	UnreadCount        int                  `json:"unread_count,omitempty"`
	UnreadCountDisplay int                  `json:"unread_count_display,omitempty"`
}

func (c *Conversation) UnmarshalJSON(data []byte) error {
	type fields Conversation
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*c = Conversation(decoded)
	return nil
}
