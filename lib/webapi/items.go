// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"bytes"

	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/schema"
	"github.com/slackwire/slackwire/lib/timestamp"
	"github.com/slackwire/slackwire/lib/union"
)

// Item kinds in pins.list, reactions.list, and stars.list. Only
// stars.list returns channel, im, and group items.
const (
	ItemTypeMessage     = "message"
	ItemTypeFile        = "file"
	ItemTypeFileComment = "file_comment"
	ItemTypeChannel     = "channel"
	ItemTypeIM          = "im"
	ItemTypeGroup       = "group"
)

// ItemVariant is implemented by ItemMessage, ItemFile,
// ItemFileComment, ItemChannel, ItemIM, and ItemGroup.
type ItemVariant interface {
	isItem()
}

var items = union.New[ItemVariant]("Item", "type", union.RequiredTag,
	union.Strict[ItemVariant, ItemMessage](ItemTypeMessage),
	union.Strict[ItemVariant, ItemFile](ItemTypeFile),
	union.Strict[ItemVariant, ItemFileComment](ItemTypeFileComment),
	union.Strict[ItemVariant, ItemChannel](ItemTypeChannel),
	union.Strict[ItemVariant, ItemIM](ItemTypeIM),
	union.Strict[ItemVariant, ItemGroup](ItemTypeGroup),
)

// Item is a pinned or reacted-to object.
type Item struct {
	Value ItemVariant
}

func (i *Item) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	value, err := items.Decode(data)
	if err != nil {
		return err
	}
	i.Value = value
	return nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	if i.Value == nil {
		return []byte("null"), nil
	}
	return items.Encode(i.Value)
}

// Type returns the item's wire type.
func (i Item) Type() string {
	if i.Value == nil {
		return ""
	}
	name, _ := items.VariantOf(i.Value)
	return name
}

type ItemMessage struct {
	Channel   ref.ConversationID   `json:"channel" validate:"required"`
	Message   schema.Message       `json:"message" validate:"required"`
	Created   *timestamp.Timestamp `json:"created,omitempty"`
	CreatedBy *ref.UserID          `json:"created_by,omitempty"`
}

type ItemFile struct {
	File      schema.File          `json:"file" validate:"required"`
	Created   *timestamp.Timestamp `json:"created,omitempty"`
	CreatedBy *ref.UserID          `json:"created_by,omitempty"`
}

type ItemFileComment struct {
	Comment   schema.FileComment   `json:"comment"`
	File      schema.File          `json:"file" validate:"required"`
	Created   *timestamp.Timestamp `json:"created,omitempty"`
	CreatedBy *ref.UserID          `json:"created_by,omitempty"`
}

type ItemChannel struct {
	Channel ref.ChannelID `json:"channel" validate:"required"`
}

type ItemIM struct {
	Channel ref.DirectMessageID `json:"channel" validate:"required"`
}

type ItemGroup struct {
	Group ref.GroupID `json:"group" validate:"required"`
}

func (ItemMessage) isItem()     {}
func (ItemFile) isItem()        {}
func (ItemFileComment) isItem() {}
func (ItemChannel) isItem()     {}
func (ItemIM) isItem()          {}
func (ItemGroup) isItem()       {}
