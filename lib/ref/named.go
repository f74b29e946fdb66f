// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "fmt"

// Identifier is satisfied by every ID type and by ConversationID.
type Identifier interface {
	fmt.Stringer
	Namespace() string
}

var namedParsers = map[string]func(string) (Identifier, error){
	User{}.Name():          parseAs[User],
	Channel{}.Name():       parseAs[Channel],
	Team{}.Name():          parseAs[Team],
	Bot{}.Name():           parseAs[Bot],
	Group{}.Name():         parseAs[Group],
	File{}.Name():          parseAs[File],
	App{}.Name():           parseAs[App],
	DirectMessage{}.Name(): parseAs[DirectMessage],
	Usergroup{}.Name():     parseAs[Usergroup],
	Reminder{}.Name():      parseAs[Reminder],
	Enterprise{}.Name():    parseAs[Enterprise],
	"conversation": func(raw string) (Identifier, error) {
		conversation, err := ParseConversationID(raw)
		if err != nil {
			return nil, err
		}
		return conversation, nil
	},
}

func parseAs[N Namespace](raw string) (Identifier, error) {
	id, err := Parse[N](raw)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// ParseNamed parses raw in the namespace called name ("user",
// "channel", ..., or "conversation"). It is the runtime counterpart of
// Parse for tools that take the namespace as input.
func ParseNamed(name, raw string) (Identifier, error) {
	parse, ok := namedParsers[name]
	if !ok {
		return nil, fmt.Errorf("unknown identifier namespace %q", name)
	}
	return parse(raw)
}
