// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"fmt"

	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/timestamp"
	"github.com/slackwire/slackwire/lib/union"
)

// Event types carried in the "type" key of RTM events.
const (
	EventTypeAppsChanged    = "apps_changed"
	EventTypeBotChanged     = "bot_changed"
	EventTypeChannelMarked  = "channel_marked"
	EventTypeDndUpdatedUser = "dnd_updated_user"
	EventTypeFileChange     = "file_change"
	EventTypeFileCreated    = "file_created"
	EventTypeFilePublic     = "file_public"
	EventTypeFileShared     = "file_shared"
	EventTypeGroupMarked    = "group_marked"
	EventTypeHello          = "hello"
	EventTypeMessage        = "message"
	EventTypePinAdded       = "pin_added"
	EventTypeReactionAdded  = "reaction_added"
	EventTypeUserChange     = "user_change"
	EventTypeUserTyping     = "user_typing"
)

// EventVariant is implemented by every event struct.
type EventVariant interface {
	isEvent()
}

// events dispatches on "type" and strips it before decoding, so event
// structs do not declare it. Every event rejects unknown keys.
var events = union.New[EventVariant]("Event", "type", union.RequiredTag,
	union.Strict[EventVariant, EventAppsChanged](EventTypeAppsChanged),
	union.Strict[EventVariant, EventBotChanged](EventTypeBotChanged),
	union.Strict[EventVariant, EventChannelMarked](EventTypeChannelMarked),
	union.Strict[EventVariant, EventDndUpdatedUser](EventTypeDndUpdatedUser),
	union.Strict[EventVariant, EventFileChange](EventTypeFileChange),
	union.Strict[EventVariant, EventFileCreated](EventTypeFileCreated),
	union.Strict[EventVariant, EventFilePublic](EventTypeFilePublic),
	union.Strict[EventVariant, EventFileShared](EventTypeFileShared),
	union.Strict[EventVariant, EventGroupMarked](EventTypeGroupMarked),
	union.Strict[EventVariant, EventHello](EventTypeHello),
	union.Func[EventVariant](EventTypeMessage, decodeEventMessage),
	union.Strict[EventVariant, EventPinAdded](EventTypePinAdded),
	union.Strict[EventVariant, EventReactionAdded](EventTypeReactionAdded),
	union.Strict[EventVariant, EventUserChange](EventTypeUserChange),
	union.Strict[EventVariant, EventUserTyping](EventTypeUserTyping),
)

// Event is one RTM event. Value holds one of the Event* structs.
type Event struct {
	Value EventVariant
}

// DecodeEvent decodes an event payload. A payload without a "type"
// key fails with *union.MissingTagError.
func DecodeEvent(data []byte) (Event, error) {
	value, err := events.Decode(data)
	if err != nil {
		return Event{}, err
	}
	return Event{Value: value}, nil
}

// EventTypes lists the known event types in registration order.
func EventTypes() []string {
	return events.Variants()
}

// Type returns the wire type of e's variant, or "" when e is empty.
func (e Event) Type() string {
	if e.Value == nil {
		return ""
	}
	name, _ := events.VariantOf(e.Value)
	return name
}

func (e *Event) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	if e.Value == nil {
		return []byte("null"), nil
	}
	data, err := events.Encode(e.Value)
	if err != nil {
		return nil, fmt.Errorf("encoding event: %w", err)
	}
	return data, nil
}

// EventMessage is a message delivered as an event. The whole event
// object, minus its "type", is decoded as a Message.
type EventMessage struct {
	Message
}

func decodeEventMessage(data []byte) (EventMessage, error) {
	message, err := DecodeMessage(data)
	if err != nil {
		return EventMessage{}, err
	}
	return EventMessage{Message: message}, nil
}

type EventAppsChanged struct {
	App     App                 `json:"app" validate:"required"`
	EventTS timestamp.Timestamp `json:"event_ts" validate:"required"`
}

type EventBotChanged struct {
	Bot     Bot                  `json:"bot" validate:"required"`
	CacheTS *timestamp.Timestamp `json:"cache_ts,omitempty"`
	EventTS timestamp.Timestamp  `json:"event_ts" validate:"required"`
}

// EventChannelMarked reports the read cursor moving in a channel.
type EventChannelMarked struct {
	Channel             ref.ChannelID       `json:"channel" validate:"required"`
	TS                  timestamp.Timestamp `json:"ts" validate:"required"`
	UnreadCount         uint32              `json:"unread_count"`
	UnreadCountDisplay  uint32              `json:"unread_count_display"`
	NumMentions         uint32              `json:"num_mentions"`
	NumMentionsDisplay  uint32              `json:"num_mentions_display"`
	MentionCount        uint32              `json:"mention_count"`
	MentionCountDisplay uint32              `json:"mention_count_display"`
	EventTS             timestamp.Timestamp `json:"event_ts" validate:"required"`
}

type EventDndUpdatedUser struct {
	User      ref.UserID          `json:"user" validate:"required"`
	DndStatus DndStatus           `json:"dnd_status" validate:"required"`
	EventTS   timestamp.Timestamp `json:"event_ts" validate:"required"`
}

// DndStatus is a user's do-not-disturb window.
type DndStatus struct {
	DndEnabled     bool                `json:"dnd_enabled"`
	NextDndStartTS timestamp.Timestamp `json:"next_dnd_start_ts" validate:"required"`
	NextDndEndTS   timestamp.Timestamp `json:"next_dnd_end_ts" validate:"required"`
}

type EventFileChange struct {
	FileID  ref.FileID          `json:"file_id" validate:"required"`
	UserID  ref.UserID          `json:"user_id" validate:"required"`
	File    FileRef             `json:"file" validate:"required"`
	EventTS timestamp.Timestamp `json:"event_ts" validate:"required"`
}

type EventFileCreated struct {
	FileID  ref.FileID           `json:"file_id" validate:"required"`
	UserID  ref.UserID           `json:"user_id" validate:"required"`
	File    FileRef              `json:"file" validate:"required"`
	EventTS timestamp.Timestamp  `json:"event_ts" validate:"required"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
}

type EventFilePublic struct {
	FileID  ref.FileID           `json:"file_id" validate:"required"`
	UserID  ref.UserID           `json:"user_id" validate:"required"`
	File    FileRef              `json:"file" validate:"required"`
	EventTS timestamp.Timestamp  `json:"event_ts" validate:"required"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
}

type EventFileShared struct {
	FileID  ref.FileID           `json:"file_id" validate:"required"`
	UserID  ref.UserID           `json:"user_id" validate:"required"`
	File    FileRef              `json:"file" validate:"required"`
	EventTS timestamp.Timestamp  `json:"event_ts" validate:"required"`
	TS      *timestamp.Timestamp `json:"ts,omitempty"`
}

// EventGroupMarked reports the read cursor moving in a private
// channel or multi-party DM.
type EventGroupMarked struct {
	Channel             ref.GroupID         `json:"channel" validate:"required"`
	TS                  timestamp.Timestamp `json:"ts" validate:"required"`
	UnreadCount         uint32              `json:"unread_count"`
	UnreadCountDisplay  uint32              `json:"unread_count_display"`
	NumMentions         uint32              `json:"num_mentions"`
	NumMentionsDisplay  uint32              `json:"num_mentions_display"`
	MentionCount        uint32              `json:"mention_count"`
	MentionCountDisplay uint32              `json:"mention_count_display"`
	EventTS             timestamp.Timestamp `json:"event_ts" validate:"required"`
	IsMPIM              bool                `json:"is_mpim,omitempty"`
}

// EventHello is the first event on a new RTM connection.
type EventHello struct{}

// EventPinAdded reports a message pinned to a conversation.
type EventPinAdded struct {
	User       ref.UserID           `json:"user" validate:"required"`
	ChannelID  ref.ConversationID   `json:"channel_id" validate:"required"`
	Item       Message              `json:"item" validate:"required"`
	ItemUser   ref.UserID           `json:"item_user" validate:"required"`
	PinCount   int                  `json:"pin_count"`
	PinnedInfo PinnedInfo           `json:"pinned_info" validate:"required"`
	EventTS    timestamp.Timestamp  `json:"event_ts" validate:"required"`
	TS         *timestamp.Timestamp `json:"ts,omitempty"`
}

// PinnedInfo records who pinned an item and when.
type PinnedInfo struct {
	Channel  ref.ConversationID   `json:"channel" validate:"required"`
	PinnedBy ref.UserID           `json:"pinned_by" validate:"required"`
	PinnedTS timestamp.Timestamp  `json:"pinned_ts" validate:"required"`
	EventTS  timestamp.Timestamp  `json:"event_ts" validate:"required"`
	TS       *timestamp.Timestamp `json:"ts,omitempty"`
}

// EventReactionAdded reports a reaction. Item is the reacted-to
// object, itself encoded as an event ({"type": "message", ...}).
type EventReactionAdded struct {
	User     ref.UserID          `json:"user" validate:"required"`
	Item     *Event              `json:"item" validate:"required"`
	Reaction string              `json:"reaction" validate:"required"`
	ItemUser ref.UserID          `json:"item_user" validate:"required"`
	EventTS  timestamp.Timestamp `json:"event_ts" validate:"required"`
	TS       timestamp.Timestamp `json:"ts" validate:"required"`
}

type EventUserChange struct {
	User    User                `json:"user" validate:"required"`
	CacheTS timestamp.Timestamp `json:"cache_ts" validate:"required"`
	EventTS timestamp.Timestamp `json:"event_ts" validate:"required"`
}

// EventUserTyping is sent while a user is composing a message.
type EventUserTyping struct {
	Channel ref.ConversationID `json:"channel" validate:"required"`
	User    ref.UserID         `json:"user" validate:"required"`
}

func (EventAppsChanged) isEvent()    {}
func (EventBotChanged) isEvent()     {}
func (EventChannelMarked) isEvent()  {}
func (EventDndUpdatedUser) isEvent() {}
func (EventFileChange) isEvent()     {}
func (EventFileCreated) isEvent()    {}
func (EventFilePublic) isEvent()     {}
func (EventFileShared) isEvent()     {}
func (EventGroupMarked) isEvent()    {}
func (EventHello) isEvent()          {}
func (EventMessage) isEvent()        {}
func (EventPinAdded) isEvent()       {}
func (EventReactionAdded) isEvent()  {}
func (EventUserChange) isEvent()     {}
func (EventUserTyping) isEvent()     {}
