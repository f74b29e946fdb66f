// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/timestamp"
)

// User is a workspace member as returned by users.info, users.list,
// and user_change events. User rejects unknown keys wherever it
// appears.
type User struct {
	ID                ref.UserID           `json:"id" validate:"required"`
	Name              string               `json:"name" validate:"required"`
	TeamID            *ref.TeamID          `json:"team_id,omitempty"`
	Color             string               `json:"color,omitempty"`
	Deleted           bool                 `json:"deleted,omitempty"`
	Has2FA            bool                 `json:"has_2fa,omitempty"`
	TwoFactorType     string               `json:"two_factor_type,omitempty"`
	IsAdmin           bool                 `json:"is_admin,omitempty"`
	IsAppUser         bool                 `json:"is_app_user,omitempty"`
	IsBot             bool                 `json:"is_bot,omitempty"`
	IsOwner           bool                 `json:"is_owner,omitempty"`
	IsPrimaryOwner    bool                 `json:"is_primary_owner,omitempty"`
	IsRestricted      bool                 `json:"is_restricted,omitempty"`
	IsUltraRestricted bool                 `json:"is_ultra_restricted,omitempty"`
	Locale            string               `json:"locale,omitempty"`
	Profile           *UserProfile         `json:"profile,omitempty"`
	RealName          string               `json:"real_name,omitempty"`
	TZ                string               `json:"tz,omitempty"`
	TZLabel           string               `json:"tz_label,omitempty"`
	TZOffset          int                  `json:"tz_offset,omitempty"`
	Updated           *timestamp.Timestamp `json:"updated,omitempty"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type fields User
	decoded, err := decodeRecord[fields](data, true)
	if err != nil {
		return err
	}
	*u = User(decoded)
	return nil
}

// UserProfile is the free-form profile block attached to a user.
type UserProfile struct {
	AvatarHash            string        `json:"avatar_hash,omitempty"`
	DisplayName           string        `json:"display_name,omitempty"`
	DisplayNameNormalized string        `json:"display_name_normalized,omitempty"`
	Email                 string        `json:"email,omitempty"`
	Fields                ProfileFields `json:"fields,omitempty"`
	FirstName             string        `json:"first_name,omitempty"`
	LastName              string        `json:"last_name,omitempty"`
	GuestChannels         string        `json:"guest_channels,omitempty"`
	Image24               string        `json:"image_24,omitempty"`
	Image32               string        `json:"image_32,omitempty"`
	Image48               string        `json:"image_48,omitempty"`
	Image72               string        `json:"image_72,omitempty"`
	Image192              string        `json:"image_192,omitempty"`
	Image512              string        `json:"image_512,omitempty"`
	ImageOriginal         string        `json:"image_original,omitempty"`
	Phone                 string        `json:"phone,omitempty"`
	RealName              string        `json:"real_name,omitempty"`
	RealNameNormalized    string        `json:"real_name_normalized,omitempty"`
	Skype                 string        `json:"skype,omitempty"`
	StatusEmoji           string        `json:"status_emoji,omitempty"`
	StatusText            string        `json:"status_text,omitempty"`
	Team                  *ref.TeamID   `json:"team,omitempty"`
	Title                 string        `json:"title,omitempty"`
}

func (p *UserProfile) UnmarshalJSON(data []byte) error {
	type fields UserProfile
	decoded, err := decodeRecord[fields](data, false)
	if err != nil {
		return err
	}
	*p = UserProfile(decoded)
	return nil
}

// ProfileField is one custom profile field value.
type ProfileField struct {
	Value string `json:"value,omitempty"`
	Alt   string `json:"alt,omitempty"`
	Label string `json:"label,omitempty"`
}

// ProfileFields maps custom field IDs to values. Slack encodes an
// empty set as [] rather than {}, so both decode to an empty map; null
// leaves the map nil.
type ProfileFields map[string]ProfileField

var errNonEmptyFieldArray = errors.New("profile fields: non-empty array is not valid")

func (f *ProfileFields) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*f = nil
		return nil
	case len(trimmed) > 0 && trimmed[0] == '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return fmt.Errorf("profile fields: %w", err)
		}
		if len(elements) > 0 {
			return errNonEmptyFieldArray
		}
		*f = ProfileFields{}
		return nil
	}

	var decoded map[string]ProfileField
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return err
	}
	*f = decoded
	return nil
}
