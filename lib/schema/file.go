// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/timestamp"
)

// File is an uploaded file or snippet. Created and Timestamp are
// integer seconds on the wire.
type File struct {
	ID                 ref.FileID            `json:"id" validate:"required"`
	Name               string                `json:"name,omitempty"`
	Title              string                `json:"title,omitempty"`
	Mimetype           string                `json:"mimetype,omitempty"`
	Filetype           string                `json:"filetype,omitempty"`
	PrettyType         string                `json:"pretty_type,omitempty"`
	Mode               string                `json:"mode,omitempty"`
	User               *ref.UserID           `json:"user,omitempty"`
	Username           string                `json:"username,omitempty"`
	Created            *timestamp.Timestamp  `json:"created,omitempty"`
	Timestamp          *timestamp.Timestamp  `json:"timestamp,omitempty"`
	Size               int64                 `json:"size,omitempty"`
	Channels           []ref.ChannelID       `json:"channels,omitempty"`
	Groups             []ref.GroupID         `json:"groups,omitempty"`
	IMs                []ref.DirectMessageID `json:"ims,omitempty"`
	PinnedTo           []ref.ConversationID  `json:"pinned_to,omitempty"`
	CommentsCount      int                   `json:"comments_count,omitempty"`
	InitialComment     *FileComment          `json:"initial_comment,omitempty"`
	DisplayAsBot       bool                  `json:"display_as_bot,omitempty"`
	Editable           bool                  `json:"editable,omitempty"`
	EditLink           string                `json:"edit_link,omitempty"`
	ExternalType       string                `json:"external_type,omitempty"`
	IsExternal         bool                  `json:"is_external,omitempty"`
	IsPublic           bool                  `json:"is_public,omitempty"`
	IsStarred          bool                  `json:"is_starred,omitempty"`
	NumStars           int                   `json:"num_stars,omitempty"`
	PublicURLShared    bool                  `json:"public_url_shared,omitempty"`
	Lines              int                   `json:"lines,omitempty"`
	LinesMore          int                   `json:"lines_more,omitempty"`
	Permalink          string                `json:"permalink,omitempty"`
	PermalinkPublic    string                `json:"permalink_public,omitempty"`
	Preview            string                `json:"preview,omitempty"`
	PreviewHighlight   string                `json:"preview_highlight,omitempty"`
	Reactions          []Reaction            `json:"reactions,omitempty"`
	Thumb64            string                `json:"thumb_64,omitempty"`
	Thumb80            string                `json:"thumb_80,omitempty"`
	Thumb160           string                `json:"thumb_160,omitempty"`
	Thumb360           string                `json:"thumb_360,omitempty"`
	Thumb360Gif        string                `json:"thumb_360_gif,omitempty"`
	Thumb360W          int                   `json:"thumb_360_w,omitempty"`
	Thumb360H          int                   `json:"thumb_360_h,omitempty"`
	Thumb480           string                `json:"thumb_480,omitempty"`
	Thumb480W          int                   `json:"thumb_480_w,omitempty"`
	Thumb480H          int                   `json:"thumb_480_h,omitempty"`
	URLPrivate         string                `json:"url_private,omitempty"`
	URLPrivateDownload string                `json:"url_private_download,omitempty"`
}

func (f *File) UnmarshalJSON(data []byte) error {
	type fields File
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*f = File(decoded)
	return nil
}

// FileComment is a comment on a file.
type FileComment struct {
	ID        string               `json:"id,omitempty"`
	Comment   string               `json:"comment,omitempty"`
	User      *ref.UserID          `json:"user,omitempty"`
	Timestamp *timestamp.Timestamp `json:"timestamp,omitempty"`
	Reactions []Reaction           `json:"reactions,omitempty"`
}

func (c *FileComment) UnmarshalJSON(data []byte) error {
	type fields FileComment
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*c = FileComment(decoded)
	return nil
}

// FileRef is the bare {"id": ...} object file events carry in place of
// a full File.
type FileRef struct {
	ID ref.FileID `json:"id" validate:"required"`
}
