// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "fmt"

// MaxLength is the largest identifier, in bytes, that fits inline.
const MaxLength = 9

// ID is a validated Slack identifier in namespace N, stored inline.
//
// Bytes past length are always zero, so == compares identifier text.
// The zero value is not a valid identifier; use IsZero to check.
type ID[N Namespace] struct {
	length uint8
	buf    [MaxLength]byte
}

type (
	UserID          = ID[User]
	ChannelID       = ID[Channel]
	TeamID          = ID[Team]
	BotID           = ID[Bot]
	GroupID         = ID[Group]
	FileID          = ID[File]
	AppID           = ID[App]
	DirectMessageID = ID[DirectMessage]
	UsergroupID     = ID[Usergroup]
	ReminderID      = ID[Reminder]
	EnterpriseID    = ID[Enterprise]
)

// Parse validates raw as an identifier in namespace N.
func Parse[N Namespace](raw string) (ID[N], error) {
	var namespace N
	if err := checkLength(namespace.Name(), raw); err != nil {
		return ID[N]{}, err
	}
	if raw[0] != namespace.Prefix() {
		return ID[N]{}, &IdentifierError{
			Err:       ErrInvalidPrefix,
			Namespace: namespace.Name(),
			Value:     raw,
			Expected:  string(namespace.Prefix()),
			Found:     raw[0],
		}
	}
	var id ID[N]
	id.length = uint8(copy(id.buf[:], raw))
	return id, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse[N Namespace](raw string) ID[N] {
	id, err := Parse[N](raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParse(%q): %v", raw, err))
	}
	return id
}

func ParseUserID(raw string) (UserID, error)           { return Parse[User](raw) }
func ParseChannelID(raw string) (ChannelID, error)     { return Parse[Channel](raw) }
func ParseTeamID(raw string) (TeamID, error)           { return Parse[Team](raw) }
func ParseBotID(raw string) (BotID, error)             { return Parse[Bot](raw) }
func ParseGroupID(raw string) (GroupID, error)         { return Parse[Group](raw) }
func ParseFileID(raw string) (FileID, error)           { return Parse[File](raw) }
func ParseAppID(raw string) (AppID, error)             { return Parse[App](raw) }
func ParseUsergroupID(raw string) (UsergroupID, error) { return Parse[Usergroup](raw) }
func ParseReminderID(raw string) (ReminderID, error)   { return Parse[Reminder](raw) }

func ParseDirectMessageID(raw string) (DirectMessageID, error) {
	return Parse[DirectMessage](raw)
}

func ParseEnterpriseID(raw string) (EnterpriseID, error) {
	return Parse[Enterprise](raw)
}

// checkLength enforces the 1..MaxLength byte bound shared by every
// namespace.
func checkLength(namespace, raw string) error {
	if len(raw) == 0 || len(raw) > MaxLength {
		return &IdentifierError{
			Err:       ErrInvalidLength,
			Namespace: namespace,
			Value:     raw,
		}
	}
	return nil
}

// String returns the identifier text exactly as it was parsed.
func (id ID[N]) String() string { return string(id.buf[:id.length]) }

// IsZero reports whether the ID is the zero value (uninitialized).
func (id ID[N]) IsZero() bool { return id.length == 0 }

// Namespace returns the name of the identifier's namespace.
func (id ID[N]) Namespace() string {
	var namespace N
	return namespace.Name()
}

// MarshalText implements encoding.TextMarshaler. The zero value
// marshals to empty text.
func (id ID[N]) MarshalText() ([]byte, error) {
	return id.buf[:id.length:id.length], nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input is an
// ErrInvalidLength error; fields that may be absent are declared as
// pointers.
func (id *ID[N]) UnmarshalText(data []byte) error {
	parsed, err := Parse[N](string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
