// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// ConversationKind records which namespace a ConversationID matched.
type ConversationKind uint8

const (
	ConversationUnknown ConversationKind = iota
	ConversationChannel
	ConversationGroup
	ConversationDirectMessage
)

func (k ConversationKind) String() string {
	switch k {
	case ConversationChannel:
		return Channel{}.Name()
	case ConversationGroup:
		return Group{}.Name()
	case ConversationDirectMessage:
		return DirectMessage{}.Name()
	default:
		return "unknown"
	}
}

// conversationMembers is the prefix match order for ParseConversationID.
var conversationMembers = []struct {
	kind      ConversationKind
	namespace Namespace
}{
	{ConversationChannel, Channel{}},
	{ConversationGroup, Group{}},
	{ConversationDirectMessage, DirectMessage{}},
}

// ConversationID is an identifier for a channel, private group, or
// direct message, for API fields that accept any of the three.
type ConversationID struct {
	kind   ConversationKind
	length uint8
	buf    [MaxLength]byte
}

// ParseConversationID validates raw against the channel, group, and
// direct message namespaces, in that order. The first matching prefix
// wins.
func ParseConversationID(raw string) (ConversationID, error) {
	if err := checkLength("conversation", raw); err != nil {
		return ConversationID{}, err
	}
	for _, member := range conversationMembers {
		if raw[0] == member.namespace.Prefix() {
			conversation := ConversationID{kind: member.kind}
			conversation.length = uint8(copy(conversation.buf[:], raw))
			return conversation, nil
		}
	}
	var expected strings.Builder
	for _, member := range conversationMembers {
		expected.WriteByte(member.namespace.Prefix())
	}
	return ConversationID{}, &IdentifierError{
		Err:       ErrUnrecognizedConversationPrefix,
		Namespace: "conversation",
		Value:     raw,
		Expected:  expected.String(),
		Found:     raw[0],
	}
}

// MustParseConversationID is like ParseConversationID but panics on
// error.
func MustParseConversationID(raw string) ConversationID {
	conversation, err := ParseConversationID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseConversationID(%q): %v", raw, err))
	}
	return conversation
}

func conversationFrom[N Namespace](kind ConversationKind, id ID[N]) ConversationID {
	return ConversationID{kind: kind, length: id.length, buf: id.buf}
}

// ChannelConversation widens a ChannelID to a ConversationID.
func ChannelConversation(id ChannelID) ConversationID {
	return conversationFrom(ConversationChannel, id)
}

// GroupConversation widens a GroupID to a ConversationID.
func GroupConversation(id GroupID) ConversationID {
	return conversationFrom(ConversationGroup, id)
}

// DirectMessageConversation widens a DirectMessageID to a
// ConversationID.
func DirectMessageConversation(id DirectMessageID) ConversationID {
	return conversationFrom(ConversationDirectMessage, id)
}

// Kind reports which namespace the identifier belongs to.
func (c ConversationID) Kind() ConversationKind { return c.kind }

// Channel returns the identifier as a ChannelID if it is one.
func (c ConversationID) Channel() (ChannelID, bool) {
	return narrow[Channel](c, ConversationChannel)
}

// Group returns the identifier as a GroupID if it is one.
func (c ConversationID) Group() (GroupID, bool) {
	return narrow[Group](c, ConversationGroup)
}

// DirectMessage returns the identifier as a DirectMessageID if it is
// one.
func (c ConversationID) DirectMessage() (DirectMessageID, bool) {
	return narrow[DirectMessage](c, ConversationDirectMessage)
}

func narrow[N Namespace](c ConversationID, kind ConversationKind) (ID[N], bool) {
	if c.kind != kind {
		return ID[N]{}, false
	}
	return ID[N]{length: c.length, buf: c.buf}, true
}

func (c ConversationID) String() string { return string(c.buf[:c.length]) }

func (c ConversationID) IsZero() bool { return c.length == 0 }

// Namespace returns the name of the matched namespace.
func (c ConversationID) Namespace() string { return c.kind.String() }

func (c ConversationID) MarshalText() ([]byte, error) {
	return c.buf[:c.length:c.length], nil
}

func (c *ConversationID) UnmarshalText(data []byte) error {
	parsed, err := ParseConversationID(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
