// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/timestamp"
)

// MessageHeader carries the discriminator keys every message may
// send. Type is "message" in history and RTM payloads; Subtype is
// empty for standard messages.
type MessageHeader struct {
	Type    string `json:"type,omitempty"`
	Subtype string `json:"subtype,omitempty"`
}

// MessageStandard is a plain user or bot message. It rejects unknown
// keys.
type MessageStandard struct {
	MessageHeader

	Text           string               `json:"text"`
	TS             *timestamp.Timestamp `json:"ts,omitempty"`
	ThreadTS       *timestamp.Timestamp `json:"thread_ts,omitempty"`
	EventTS        *timestamp.Timestamp `json:"event_ts,omitempty"`
	User           *ref.UserID          `json:"user,omitempty"`
	BotID          *ref.BotID           `json:"bot_id,omitempty"`
	Channel        *ref.ConversationID  `json:"channel,omitempty"`
	ChannelType    string               `json:"channel_type,omitempty"`
	Team           *ref.TeamID          `json:"team,omitempty"`
	SourceTeam     *ref.TeamID          `json:"source_team,omitempty"`
	UserTeam       *ref.TeamID          `json:"user_team,omitempty"`
	ClientMsgID    *uuid.UUID           `json:"client_msg_id,omitempty"`
	Attachments    []Attachment         `json:"attachments,omitempty"`
	Blocks         json.RawMessage      `json:"blocks,omitempty"`
	Edited         *Edited              `json:"edited,omitempty"`
	Reactions      []Reaction           `json:"reactions,omitempty"`
	ReplyBroadcast bool                 `json:"reply_broadcast,omitempty"`
	ParentUserID   *ref.UserID          `json:"parent_user_id,omitempty"`
	Replies        []Reply              `json:"replies,omitempty" validate:"dive"`
	ReplyCount     int                  `json:"reply_count,omitempty"`
	LastRead       *timestamp.Timestamp `json:"last_read,omitempty"`
	Subscribed     bool                 `json:"subscribed,omitempty"`
	UnreadCount    int                  `json:"unread_count,omitempty"`
	PinnedInfo     *MessagePinnedItem   `json:"pinned_info,omitempty"`
	PinnedTo       []ref.ConversationID `json:"pinned_to,omitempty"`
	IsStarred      bool                 `json:"is_starred,omitempty"`
	DisplayAsBot   bool                 `json:"display_as_bot,omitempty"`
	Files          []File               `json:"files,omitempty"`
	Upload         bool                 `json:"upload,omitempty"`
	UploadReplyTo  *uuid.UUID           `json:"upload_reply_to,omitempty"`
	XFiles         []ref.FileID         `json:"x_files,omitempty"`
	UserProfile    *UserProfile         `json:"user_profile,omitempty"`
	SuppressNotify bool                 `json:"suppress_notification,omitempty"`
}

// Reply is a thread reply reference inside a parent message.
type Reply struct {
	User ref.UserID          `json:"user" validate:"required"`
	TS   timestamp.Timestamp `json:"ts" validate:"required"`
}

// Edited records the last edit of a message.
type Edited struct {
	User *ref.UserID          `json:"user,omitempty"`
	TS   *timestamp.Timestamp `json:"ts,omitempty"`
}

func (e *Edited) UnmarshalJSON(data []byte) error {
	type fields Edited
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*e = Edited(decoded)
	return nil
}

// Attachment is a legacy message attachment. Different subtypes send
// different subsets of these keys.
type Attachment struct {
	ID            int                  `json:"id,omitempty"`
	Fallback      string               `json:"fallback,omitempty"`
	Color         string               `json:"color,omitempty"`
	Pretext       string               `json:"pretext,omitempty"`
	AuthorName    string               `json:"author_name,omitempty"`
	AuthorSubname string               `json:"author_subname,omitempty"`
	AuthorLink    string               `json:"author_link,omitempty"`
	AuthorIcon    string               `json:"author_icon,omitempty"`
	Title         string               `json:"title,omitempty"`
	TitleLink     string               `json:"title_link,omitempty"`
	Text          string               `json:"text,omitempty"`
	Fields        []AttachmentField    `json:"fields,omitempty"`
	ImageURL      string               `json:"image_url,omitempty"`
	ThumbURL      string               `json:"thumb_url,omitempty"`
	Footer        string               `json:"footer,omitempty"`
	FooterIcon    string               `json:"footer_icon,omitempty"`
	FromURL       string               `json:"from_url,omitempty"`
	ServiceName   string               `json:"service_name,omitempty"`
	ServiceIcon   string               `json:"service_icon,omitempty"`
	ChannelID     *ref.ConversationID  `json:"channel_id,omitempty"`
	ChannelName   string               `json:"channel_name,omitempty"`
	MrkdwnIn      []string             `json:"mrkdwn_in,omitempty"`
	TS            *timestamp.Timestamp `json:"ts,omitempty"`
}

func (a *Attachment) UnmarshalJSON(data []byte) error {
	type fields Attachment
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*a = Attachment(decoded)
	return nil
}

// AttachmentField is one row of an attachment's field table.
type AttachmentField struct {
	Title string `json:"title,omitempty"`
	Value string `json:"value,omitempty"`
	Short bool   `json:"short,omitempty"`
}

// MessageBotAdd announces an integration added to the channel.
type MessageBotAdd struct {
	MessageHeader
	BotID   *ref.BotID           `json:"bot_id,omitempty"`
	BotLink string               `json:"bot_link,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

// MessageBotRemove announces an integration removed from the channel.
type MessageBotRemove struct {
	MessageHeader
	BotID   *ref.BotID           `json:"bot_id,omitempty"`
	BotLink string               `json:"bot_link,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

// MessageBotMessage is posted by an integration rather than a user.
type MessageBotMessage struct {
	MessageHeader
	BotID       *ref.BotID           `json:"bot_id,omitempty"`
	Username    string               `json:"username,omitempty"`
	Icons       *Icons               `json:"icons,omitempty"`
	Text        string               `json:"text"`
	TS          *timestamp.Timestamp `json:"ts,omitempty"`
	Channel     *ref.ConversationID  `json:"channel,omitempty"`
	Team        *ref.TeamID          `json:"team,omitempty"`
	Reactions   []Reaction           `json:"reactions,omitempty"`
	Attachments []Attachment         `json:"attachments,omitempty"`
}

type MessageChannelArchive struct {
	MessageHeader
	Members []ref.UserID         `json:"members,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

// MessageChannelJoin is posted when a user joins a channel. It
// rejects unknown keys.
type MessageChannelJoin struct {
	MessageHeader
	Text        string               `json:"text"`
	TS          *timestamp.Timestamp `json:"ts,omitempty"`
	EventTS     *timestamp.Timestamp `json:"event_ts,omitempty"`
	User        *ref.UserID          `json:"user,omitempty"`
	Inviter     *ref.UserID          `json:"inviter,omitempty"`
	Channel     *ref.ConversationID  `json:"channel,omitempty"`
	ChannelType string               `json:"channel_type,omitempty"`
	Team        *ref.TeamID          `json:"team,omitempty"`
}

// MessageChannelLeave is posted when a user leaves a channel. It
// rejects unknown keys.
type MessageChannelLeave struct {
	MessageHeader
	Text        string               `json:"text"`
	TS          *timestamp.Timestamp `json:"ts,omitempty"`
	EventTS     *timestamp.Timestamp `json:"event_ts,omitempty"`
	User        *ref.UserID          `json:"user,omitempty"`
	Channel     *ref.ConversationID  `json:"channel,omitempty"`
	ChannelType string               `json:"channel_type,omitempty"`
	Team        *ref.TeamID          `json:"team,omitempty"`
}

type MessageChannelName struct {
	MessageHeader
	Name    string               `json:"name,omitempty"`
	OldName string               `json:"old_name,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

type MessageChannelPurpose struct {
	MessageHeader
	Purpose string               `json:"purpose,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

type MessageChannelTopic struct {
	MessageHeader
	Topic string               `json:"topic,omitempty"`
	Text  string               `json:"text"`
	TS    *timestamp.Timestamp `json:"ts,omitempty"`
	User  *ref.UserID          `json:"user,omitempty"`
}

type MessageChannelUnarchive struct {
	MessageHeader
	Text string               `json:"text"`
	TS   *timestamp.Timestamp `json:"ts,omitempty"`
	User *ref.UserID          `json:"user,omitempty"`
}

// MessageFileComment is posted when someone comments on a shared file.
type MessageFileComment struct {
	MessageHeader
	Comment *FileComment         `json:"comment,omitempty"`
	File    *File                `json:"file,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
}

type MessageFileMention struct {
	MessageHeader
	File *File                `json:"file,omitempty"`
	Text string               `json:"text"`
	TS   *timestamp.Timestamp `json:"ts,omitempty"`
	User *ref.UserID          `json:"user,omitempty"`
}

type MessageFileShare struct {
	MessageHeader
	Channel   *ref.ConversationID  `json:"channel,omitempty"`
	File      *File                `json:"file,omitempty"`
	Text      string               `json:"text"`
	TS        *timestamp.Timestamp `json:"ts,omitempty"`
	Upload    bool                 `json:"upload,omitempty"`
	User      *ref.UserID          `json:"user,omitempty"`
	Reactions []Reaction           `json:"reactions,omitempty"`
}

type MessageGroupArchive struct {
	MessageHeader
	Members []ref.UserID         `json:"members,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

// MessageGroupJoin is posted when a user joins a private channel. It
// rejects unknown keys.
type MessageGroupJoin struct {
	MessageHeader
	Text        string               `json:"text"`
	TS          *timestamp.Timestamp `json:"ts,omitempty"`
	EventTS     *timestamp.Timestamp `json:"event_ts,omitempty"`
	User        *ref.UserID          `json:"user,omitempty"`
	Inviter     *ref.UserID          `json:"inviter,omitempty"`
	Channel     *ref.ConversationID  `json:"channel,omitempty"`
	ChannelType string               `json:"channel_type,omitempty"`
	Team        *ref.TeamID          `json:"team,omitempty"`
}

// MessageGroupLeave is posted when a user leaves a private channel.
// It rejects unknown keys.
type MessageGroupLeave struct {
	MessageHeader
	Text        string               `json:"text"`
	TS          *timestamp.Timestamp `json:"ts,omitempty"`
	EventTS     *timestamp.Timestamp `json:"event_ts,omitempty"`
	User        *ref.UserID          `json:"user,omitempty"`
	Channel     *ref.ConversationID  `json:"channel,omitempty"`
	ChannelType string               `json:"channel_type,omitempty"`
	Team        *ref.TeamID          `json:"team,omitempty"`
}

type MessageGroupName struct {
	MessageHeader
	Name    string               `json:"name,omitempty"`
	OldName string               `json:"old_name,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

type MessageGroupPurpose struct {
	MessageHeader
	Purpose string               `json:"purpose,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

type MessageGroupTopic struct {
	MessageHeader
	Topic string               `json:"topic,omitempty"`
	Text  string               `json:"text"`
	TS    *timestamp.Timestamp `json:"ts,omitempty"`
	User  *ref.UserID          `json:"user,omitempty"`
}

type MessageGroupUnarchive struct {
	MessageHeader
	Text string               `json:"text"`
	TS   *timestamp.Timestamp `json:"ts,omitempty"`
	User *ref.UserID          `json:"user,omitempty"`
}

// MessageMe is a /me action message.
type MessageMe struct {
	MessageHeader
	Channel *ref.ConversationID  `json:"channel,omitempty"`
	Text    string               `json:"text"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

// MessageChanged reports an edit. Message is the new version and
// PreviousMessage the old one; both are full messages of any subtype.
type MessageChanged struct {
	MessageHeader
	Channel         ref.ConversationID  `json:"channel" validate:"required"`
	EventTS         timestamp.Timestamp `json:"event_ts" validate:"required"`
	TS              timestamp.Timestamp `json:"ts" validate:"required"`
	Hidden          bool                `json:"hidden,omitempty"`
	Message         *Message            `json:"message,omitempty"`
	PreviousMessage *Message            `json:"previous_message,omitempty"`
}

// MessageDeleted reports a deletion. DeletedTS is the removed
// message's ts.
type MessageDeleted struct {
	MessageHeader
	Channel         *ref.ConversationID  `json:"channel,omitempty"`
	DeletedTS       *timestamp.Timestamp `json:"deleted_ts,omitempty"`
	EventTS         *timestamp.Timestamp `json:"event_ts,omitempty"`
	TS              *timestamp.Timestamp `json:"ts,omitempty"`
	Hidden          bool                 `json:"hidden,omitempty"`
	PreviousMessage *Message             `json:"previous_message,omitempty"`
}

// MessageReplied reports a new thread reply; Message is the updated
// parent.
type MessageReplied struct {
	MessageHeader
	Channel  *ref.ConversationID  `json:"channel,omitempty"`
	EventTS  timestamp.Timestamp  `json:"event_ts" validate:"required"`
	TS       timestamp.Timestamp  `json:"ts" validate:"required"`
	ThreadTS *timestamp.Timestamp `json:"thread_ts,omitempty"`
	Hidden   bool                 `json:"hidden,omitempty"`
	Message  *Message             `json:"message,omitempty"`
}

// MessagePinnedItem is posted when an item is pinned. Standard
// messages reuse it as their pinned_info block. Item is kept raw: its
// shape depends on ItemType.
type MessagePinnedItem struct {
	MessageHeader
	Channel  *ref.ConversationID  `json:"channel,omitempty"`
	Item     json.RawMessage      `json:"item,omitempty"`
	ItemType string               `json:"item_type,omitempty"`
	Text     string               `json:"text,omitempty"`
	TS       *timestamp.Timestamp `json:"ts,omitempty"`
	User     *ref.UserID          `json:"user,omitempty"`
}

func (p *MessagePinnedItem) UnmarshalJSON(data []byte) error {
	type fields MessagePinnedItem
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*p = MessagePinnedItem(decoded)
	return nil
}

type MessageReplyBroadcast struct {
	MessageHeader
	Attachments []Attachment         `json:"attachments,omitempty"`
	Channel     *ref.ConversationID  `json:"channel,omitempty"`
	EventTS     *timestamp.Timestamp `json:"event_ts,omitempty"`
	TS          *timestamp.Timestamp `json:"ts,omitempty"`
	User        *ref.UserID          `json:"user,omitempty"`
}

// MessageReminderAdd is Slackbot's confirmation of a new reminder.
type MessageReminderAdd struct {
	MessageHeader
	Message string               `json:"message,omitempty"`
	Text    string               `json:"text,omitempty"`
	Channel *ref.ConversationID  `json:"channel,omitempty"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
	User    *ref.UserID          `json:"user,omitempty"`
}

type MessageSlackbotResponse struct {
	MessageHeader
	Channel   *ref.ConversationID  `json:"channel,omitempty"`
	Text      string               `json:"text"`
	TS        *timestamp.Timestamp `json:"ts,omitempty"`
	User      *ref.UserID          `json:"user,omitempty"`
	Reactions []Reaction           `json:"reactions,omitempty"`
}

// MessageThreadBroadcast is a thread reply also sent to the channel.
// Root is the thread's parent message.
type MessageThreadBroadcast struct {
	MessageHeader
	Attachments []Attachment         `json:"attachments,omitempty"`
	Root        *Message             `json:"root,omitempty"`
	Text        string               `json:"text"`
	ThreadTS    *timestamp.Timestamp `json:"thread_ts,omitempty"`
	TS          *timestamp.Timestamp `json:"ts,omitempty"`
	User        *ref.UserID          `json:"user,omitempty"`
}

type MessageUnpinnedItem struct {
	MessageHeader
	Channel  *ref.ConversationID  `json:"channel,omitempty"`
	Item     json.RawMessage      `json:"item,omitempty"`
	ItemType string               `json:"item_type,omitempty"`
	Text     string               `json:"text"`
	TS       *timestamp.Timestamp `json:"ts,omitempty"`
	User     *ref.UserID          `json:"user,omitempty"`
}

func (MessageStandard) isMessage()         {}
func (MessageBotAdd) isMessage()           {}
func (MessageBotRemove) isMessage()        {}
func (MessageBotMessage) isMessage()       {}
func (MessageChannelArchive) isMessage()   {}
func (MessageChannelJoin) isMessage()      {}
func (MessageChannelLeave) isMessage()     {}
func (MessageChannelName) isMessage()      {}
func (MessageChannelPurpose) isMessage()   {}
func (MessageChannelTopic) isMessage()     {}
func (MessageChannelUnarchive) isMessage() {}
func (MessageFileComment) isMessage()      {}
func (MessageFileMention) isMessage()      {}
func (MessageFileShare) isMessage()        {}
func (MessageGroupArchive) isMessage()     {}
func (MessageGroupJoin) isMessage()        {}
func (MessageGroupLeave) isMessage()       {}
func (MessageGroupName) isMessage()        {}
func (MessageGroupPurpose) isMessage()     {}
func (MessageGroupTopic) isMessage()       {}
func (MessageGroupUnarchive) isMessage()   {}
func (MessageMe) isMessage()               {}
func (MessageChanged) isMessage()          {}
func (MessageDeleted) isMessage()          {}
func (MessageReplied) isMessage()          {}
func (MessagePinnedItem) isMessage()       {}
func (MessageReplyBroadcast) isMessage()   {}
func (MessageReminderAdd) isMessage()      {}
func (MessageSlackbotResponse) isMessage() {}
func (MessageThreadBroadcast) isMessage()  {}
func (MessageUnpinnedItem) isMessage()     {}
