// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"fmt"

	"github.com/slackwire/slackwire/lib/union"
)

// Message subtypes. A message without a subtype is
// MessageSubtypeStandard.
const (
	MessageSubtypeStandard         = "standard"
	MessageSubtypeBotAdd           = "bot_add"
	MessageSubtypeBotRemove        = "bot_remove"
	MessageSubtypeBotMessage       = "bot_message"
	MessageSubtypeChannelArchive   = "channel_archive"
	MessageSubtypeChannelJoin      = "channel_join"
	MessageSubtypeChannelLeave     = "channel_leave"
	MessageSubtypeChannelName      = "channel_name"
	MessageSubtypeChannelPurpose   = "channel_purpose"
	MessageSubtypeChannelTopic     = "channel_topic"
	MessageSubtypeChannelUnarchive = "channel_unarchive"
	MessageSubtypeFileComment      = "file_comment"
	MessageSubtypeFileMention      = "file_mention"
	MessageSubtypeFileShare        = "file_share"
	MessageSubtypeGroupArchive     = "group_archive"
	MessageSubtypeGroupJoin        = "group_join"
	MessageSubtypeGroupLeave       = "group_leave"
	MessageSubtypeGroupName        = "group_name"
	MessageSubtypeGroupPurpose     = "group_purpose"
	MessageSubtypeGroupTopic       = "group_topic"
	MessageSubtypeGroupUnarchive   = "group_unarchive"
	MessageSubtypeMeMessage        = "me_message"
	MessageSubtypeMessageChanged   = "message_changed"
	MessageSubtypeMessageDeleted   = "message_deleted"
	MessageSubtypeMessageReplied   = "message_replied"
	MessageSubtypePinnedItem       = "pinned_item"
	MessageSubtypeReplyBroadcast   = "reply_broadcast"
	MessageSubtypeReminderAdd      = "reminder_add"
	MessageSubtypeSlackbotResponse = "slackbot_response"
	MessageSubtypeThreadBroadcast  = "thread_broadcast"
	MessageSubtypeUnpinnedItem     = "unpinned_item"
)

// MessageVariant is implemented by every message subtype struct.
type MessageVariant interface {
	isMessage()
}

// messages dispatches on "subtype". The subtype key is left in the
// payload, so every variant declares it through MessageHeader.
var messages = union.New[MessageVariant]("Message", "subtype", union.DefaultVariant,
	union.Strict[MessageVariant, MessageStandard](MessageSubtypeStandard).AsDefault(),
	union.Lenient[MessageVariant, MessageBotAdd](MessageSubtypeBotAdd),
	union.Lenient[MessageVariant, MessageBotRemove](MessageSubtypeBotRemove),
	union.Lenient[MessageVariant, MessageBotMessage](MessageSubtypeBotMessage),
	union.Lenient[MessageVariant, MessageChannelArchive](MessageSubtypeChannelArchive),
	union.Strict[MessageVariant, MessageChannelJoin](MessageSubtypeChannelJoin),
	union.Strict[MessageVariant, MessageChannelLeave](MessageSubtypeChannelLeave),
	union.Lenient[MessageVariant, MessageChannelName](MessageSubtypeChannelName),
	union.Lenient[MessageVariant, MessageChannelPurpose](MessageSubtypeChannelPurpose),
	union.Lenient[MessageVariant, MessageChannelTopic](MessageSubtypeChannelTopic),
	union.Lenient[MessageVariant, MessageChannelUnarchive](MessageSubtypeChannelUnarchive),
	union.Lenient[MessageVariant, MessageFileComment](MessageSubtypeFileComment),
	union.Lenient[MessageVariant, MessageFileMention](MessageSubtypeFileMention),
	union.Lenient[MessageVariant, MessageFileShare](MessageSubtypeFileShare),
	union.Lenient[MessageVariant, MessageGroupArchive](MessageSubtypeGroupArchive),
	union.Strict[MessageVariant, MessageGroupJoin](MessageSubtypeGroupJoin),
	union.Strict[MessageVariant, MessageGroupLeave](MessageSubtypeGroupLeave),
	union.Lenient[MessageVariant, MessageGroupName](MessageSubtypeGroupName),
	union.Lenient[MessageVariant, MessageGroupPurpose](MessageSubtypeGroupPurpose),
	union.Lenient[MessageVariant, MessageGroupTopic](MessageSubtypeGroupTopic),
	union.Lenient[MessageVariant, MessageGroupUnarchive](MessageSubtypeGroupUnarchive),
	union.Lenient[MessageVariant, MessageMe](MessageSubtypeMeMessage),
	union.Lenient[MessageVariant, MessageChanged](MessageSubtypeMessageChanged),
	union.Lenient[MessageVariant, MessageDeleted](MessageSubtypeMessageDeleted),
	union.Lenient[MessageVariant, MessageReplied](MessageSubtypeMessageReplied),
	union.Lenient[MessageVariant, MessagePinnedItem](MessageSubtypePinnedItem),
	union.Lenient[MessageVariant, MessageReplyBroadcast](MessageSubtypeReplyBroadcast),
	union.Lenient[MessageVariant, MessageReminderAdd](MessageSubtypeReminderAdd),
	union.Lenient[MessageVariant, MessageSlackbotResponse](MessageSubtypeSlackbotResponse),
	union.Lenient[MessageVariant, MessageThreadBroadcast](MessageSubtypeThreadBroadcast),
	union.Lenient[MessageVariant, MessageUnpinnedItem](MessageSubtypeUnpinnedItem),
)

// Message is a channel message of any subtype. Value holds one of the
// Message* variant structs; switch on its dynamic type, or use
// Subtype for the wire name.
type Message struct {
	Value MessageVariant
}

// DecodeMessage decodes a message payload. Errors are
// *union.UnknownVariantError for an unrecognized subtype and
// *union.VariantError for a recognized subtype whose fields do not
// match.
func DecodeMessage(data []byte) (Message, error) {
	value, err := messages.Decode(data)
	if err != nil {
		return Message{}, err
	}
	return Message{Value: value}, nil
}

// MessageSubtypes lists the known subtypes, "standard" first.
func MessageSubtypes() []string {
	return messages.Variants()
}

// Subtype returns the wire subtype of m's variant, or "" when m is
// empty.
func (m Message) Subtype() string {
	if m.Value == nil {
		return ""
	}
	name, _ := messages.VariantOf(m.Value)
	return name
}

func (m *Message) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	decoded, err := DecodeMessage(data)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) {
	if m.Value == nil {
		return []byte("null"), nil
	}
	data, err := messages.Encode(m.Value)
	if err != nil {
		return nil, fmt.Errorf("encoding message: %w", err)
	}
	return data, nil
}
