// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/samber/lo"
)

// Method names with a registered response type.
const (
	MethodAPITest               = "api.test"
	MethodAuthTest              = "auth.test"
	MethodBotsInfo              = "bots.info"
	MethodChannelsHistory       = "channels.history"
	MethodChannelsInfo          = "channels.info"
	MethodChannelsList          = "channels.list"
	MethodChatDelete            = "chat.delete"
	MethodChatPostMessage       = "chat.postMessage"
	MethodChatUpdate            = "chat.update"
	MethodConversationsHistory  = "conversations.history"
	MethodConversationsInfo     = "conversations.info"
	MethodConversationsList     = "conversations.list"
	MethodConversationsMembers  = "conversations.members"
	MethodConversationsReplies  = "conversations.replies"
	MethodDndEndSnooze          = "dnd.endSnooze"
	MethodDndInfo               = "dnd.info"
	MethodDndSetSnooze          = "dnd.setSnooze"
	MethodDndTeamInfo           = "dnd.teamInfo"
	MethodEmojiList             = "emoji.list"
	MethodFilesInfo             = "files.info"
	MethodFilesList             = "files.list"
	MethodGroupsHistory         = "groups.history"
	MethodGroupsInfo            = "groups.info"
	MethodGroupsList            = "groups.list"
	MethodIMHistory             = "im.history"
	MethodIMList                = "im.list"
	MethodMPIMList              = "mpim.list"
	MethodPinsList              = "pins.list"
	MethodReactionsGet          = "reactions.get"
	MethodReactionsList         = "reactions.list"
	MethodRemindersInfo         = "reminders.info"
	MethodRemindersList         = "reminders.list"
	MethodRTMConnect            = "rtm.connect"
	MethodRTMStart              = "rtm.start"
	MethodSearchAll             = "search.all"
	MethodSearchFiles           = "search.files"
	MethodSearchMessages        = "search.messages"
	MethodStarsList             = "stars.list"
	MethodTeamInfo              = "team.info"
	MethodTeamProfileGet        = "team.profile.get"
	MethodUsergroupsList        = "usergroups.list"
	MethodUsergroupsUsersList   = "usergroups.users.list"
	MethodUsergroupsUsersUpdate = "usergroups.users.update"
	MethodUsersInfo             = "users.info"
	MethodUsersList             = "users.list"
	MethodUsersProfileGet       = "users.profile.get"
)

// Method pairs a web API method name with its response type, for
// callers that only learn the method at runtime (capture files, the
// slackwire CLI).
type Method struct {
	Name     string
	Response reflect.Type

	decode func([]byte) (any, error)
}

// Decode reads a response to m. The result is a value of m.Response.
func (m Method) Decode(data []byte) (any, error) {
	return m.decode(data)
}

func method[T any](name string) Method {
	return Method{
		Name:     name,
		Response: reflect.TypeFor[T](),
		decode: func(data []byte) (any, error) {
			return Decode[T](name, data)
		},
	}
}

var registry = lo.KeyBy([]Method{
	method[APITestResponse](MethodAPITest),
	method[AuthTestResponse](MethodAuthTest),
	method[BotsInfoResponse](MethodBotsInfo),
	method[HistoryResponse](MethodChannelsHistory),
	method[ChannelsInfoResponse](MethodChannelsInfo),
	method[ChannelsListResponse](MethodChannelsList),
	method[ChatDeleteResponse](MethodChatDelete),
	method[ChatPostMessageResponse](MethodChatPostMessage),
	method[ChatUpdateResponse](MethodChatUpdate),
	method[ConversationsHistoryResponse](MethodConversationsHistory),
	method[ConversationsInfoResponse](MethodConversationsInfo),
	method[ConversationsListResponse](MethodConversationsList),
	method[ConversationsMembersResponse](MethodConversationsMembers),
	method[ConversationsRepliesResponse](MethodConversationsReplies),
	method[DndEndSnoozeResponse](MethodDndEndSnooze),
	method[DndInfoResponse](MethodDndInfo),
	method[DndSetSnoozeResponse](MethodDndSetSnooze),
	method[DndTeamInfoResponse](MethodDndTeamInfo),
	method[EmojiListResponse](MethodEmojiList),
	method[FilesInfoResponse](MethodFilesInfo),
	method[FilesListResponse](MethodFilesList),
	method[HistoryResponse](MethodGroupsHistory),
	method[GroupsInfoResponse](MethodGroupsInfo),
	method[GroupsListResponse](MethodGroupsList),
	method[HistoryResponse](MethodIMHistory),
	method[IMListResponse](MethodIMList),
	method[MPIMListResponse](MethodMPIMList),
	method[PinsListResponse](MethodPinsList),
	method[ReactionsGetResponse](MethodReactionsGet),
	method[ReactionsListResponse](MethodReactionsList),
	method[RemindersInfoResponse](MethodRemindersInfo),
	method[RemindersListResponse](MethodRemindersList),
	method[RTMConnectResponse](MethodRTMConnect),
	method[RTMStartResponse](MethodRTMStart),
	method[SearchAllResponse](MethodSearchAll),
	method[SearchFilesResponse](MethodSearchFiles),
	method[SearchMessagesResponse](MethodSearchMessages),
	method[StarsListResponse](MethodStarsList),
	method[TeamInfoResponse](MethodTeamInfo),
	method[TeamProfileGetResponse](MethodTeamProfileGet),
	method[UsergroupsListResponse](MethodUsergroupsList),
	method[UsergroupsUsersListResponse](MethodUsergroupsUsersList),
	method[UsergroupsUsersUpdateResponse](MethodUsergroupsUsersUpdate),
	method[UsersInfoResponse](MethodUsersInfo),
	method[UsersListResponse](MethodUsersList),
	method[UsersProfileGetResponse](MethodUsersProfileGet),
}, func(m Method) string { return m.Name })

// Lookup returns the registered method with the given name.
func Lookup(name string) (Method, bool) {
	m, ok := registry[name]
	return m, ok
}

// Methods returns every registered method sorted by name.
func Methods() []Method {
	methods := lo.Values(registry)
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
	return methods
}

// DecodeMethod decodes a response to the named method.
func DecodeMethod(name string, data []byte) (any, error) {
	m, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown web API method %q", name)
	}
	return m.Decode(data)
}
