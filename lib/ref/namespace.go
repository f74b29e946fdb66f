// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// Namespace is a closed category of Slack identifier. Each namespace
// is an empty struct type whose methods report the prefix character
// every identifier in that namespace starts with.
type Namespace interface {
	// Prefix returns the required first byte of identifiers in this
	// namespace.
	Prefix() byte

	// Name returns the lowercase namespace name used in diagnostics
	// (e.g., "user", "channel").
	Name() string

	namespace()
}

// User is the namespace of user identifiers ("U024BE7LH").
type User struct{}

// Channel is the namespace of public channel identifiers ("C024BE91L").
type Channel struct{}

// Team is the namespace of workspace identifiers ("T024BE7LD").
type Team struct{}

// Bot is the namespace of bot identifiers ("B024BE7LH").
type Bot struct{}

// Group is the namespace of private channel identifiers ("G024BE91L").
type Group struct{}

// File is the namespace of uploaded file identifiers ("F024BE91L").
type File struct{}

// App is the namespace of app identifiers ("A024BE91L").
type App struct{}

// DirectMessage is the namespace of IM conversation identifiers
// ("D024BE91L").
type DirectMessage struct{}

// Usergroup is the namespace of user group identifiers ("S0614TZR7").
type Usergroup struct{}

// Reminder is the namespace of reminder identifiers ("Rm12345678").
type Reminder struct{}

// Enterprise is the namespace of Enterprise Grid organization
// identifiers ("E0123ABCD").
type Enterprise struct{}

func (User) Prefix() byte          { return 'U' }
func (Channel) Prefix() byte       { return 'C' }
func (Team) Prefix() byte          { return 'T' }
func (Bot) Prefix() byte           { return 'B' }
func (Group) Prefix() byte         { return 'G' }
func (File) Prefix() byte          { return 'F' }
func (App) Prefix() byte           { return 'A' }
func (DirectMessage) Prefix() byte { return 'D' }
func (Usergroup) Prefix() byte     { return 'S' }
func (Reminder) Prefix() byte      { return 'R' }
func (Enterprise) Prefix() byte    { return 'E' }

func (User) Name() string          { return "user" }
func (Channel) Name() string       { return "channel" }
func (Team) Name() string          { return "team" }
func (Bot) Name() string           { return "bot" }
func (Group) Name() string         { return "group" }
func (File) Name() string          { return "file" }
func (App) Name() string           { return "app" }
func (DirectMessage) Name() string { return "direct_message" }
func (Usergroup) Name() string     { return "usergroup" }
func (Reminder) Name() string      { return "reminder" }
func (Enterprise) Name() string    { return "enterprise" }

func (User) namespace()          {}
func (Channel) namespace()       {}
func (Team) namespace()          {}
func (Bot) namespace()           {}
func (Group) namespace()         {}
func (File) namespace()          {}
func (App) namespace()           {}
func (DirectMessage) namespace() {}
func (Usergroup) namespace()     {}
func (Reminder) namespace()      {}
func (Enterprise) namespace()    {}

// NamespaceInfo describes a namespace for tools that pick one at
// runtime.
type NamespaceInfo struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// allNamespaces is the closed namespace set in declaration order.
var allNamespaces = []Namespace{
	User{}, Channel{}, Team{}, Bot{}, Group{}, File{},
	App{}, DirectMessage{}, Usergroup{}, Reminder{}, Enterprise{},
}

// Namespaces lists every declared namespace.
func Namespaces() []NamespaceInfo {
	infos := make([]NamespaceInfo, 0, len(allNamespaces))
	for _, namespace := range allNamespaces {
		infos = append(infos, NamespaceInfo{
			Name:   namespace.Name(),
			Prefix: string(namespace.Prefix()),
		})
	}
	return infos
}
