// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/schema"
	"github.com/slackwire/slackwire/lib/testutil"
	"github.com/slackwire/slackwire/lib/union"
)

func TestDecodeAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  string
		code     string
		contains string
	}{
		{
			name:     "channel_not_found",
			payload:  `{"ok":false,"error":"channel_not_found"}`,
			code:     ErrCodeChannelNotFound,
			contains: "slack conversations.info: channel_not_found",
		},
		{
			name:     "missing_scope",
			payload:  `{"ok":false,"error":"missing_scope","needed":"channels:read","provided":"identify"}`,
			code:     ErrCodeMissingScope,
			contains: "needed channels:read, provided identify",
		},
		{
			name:     "no code",
			payload:  `{"ok":false}`,
			code:     "",
			contains: "unspecified error",
		},
		{
			// The body of a failed call is never checked against the
			// success schema.
			name:     "unknown keys on failure",
			payload:  `{"ok":false,"error":"ratelimited","retry_after":30}`,
			code:     ErrCodeRateLimited,
			contains: "ratelimited",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode[ConversationsInfoResponse](MethodConversationsInfo, []byte(test.payload))
			if err == nil {
				t.Fatal("expected error")
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v (%T) is not *APIError", err, err)
			}
			if apiErr.Code != test.code {
				t.Errorf("Code = %q, want %q", apiErr.Code, test.code)
			}
			if apiErr.Method != MethodConversationsInfo {
				t.Errorf("Method = %q", apiErr.Method)
			}
			if test.code != "" && !IsAPIError(err, test.code) {
				t.Errorf("IsAPIError(%q) = false", test.code)
			}
			if !strings.Contains(err.Error(), test.contains) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), test.contains)
			}
		})
	}
}

func TestIsAPIErrorRejectsOtherErrors(t *testing.T) {
	t.Parallel()
	if IsAPIError(errors.New("boom"), ErrCodeFatalError) {
		t.Error("plain error matched")
	}
	if IsAPIError(&APIError{Code: ErrCodeInvalidAuth}, ErrCodeNotAuthed) {
		t.Error("different code matched")
	}
}

func TestDecodeUsersInfo(t *testing.T) {
	t.Parallel()

	payload := `{
		"ok": true,
		"user": {
			"id": "U024BE7LH",
			"name": "spengler",
			"team_id": "T024BE7LD",
			"is_admin": true,
			"tz_offset": -28800,
			"updated": 1502138686,
			"profile": {
				"real_name": "Egon Spengler",
				"fields": [],
				"status_expiration": 0
			}
		}
	}`
	response, err := Decode[UsersInfoResponse](MethodUsersInfo, []byte(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	user := response.User
	if user.ID != ref.MustParse[ref.User]("U024BE7LH") {
		t.Errorf("ID = %v", user.ID)
	}
	if !user.IsAdmin || user.TZOffset != -28800 {
		t.Errorf("user = %+v", user)
	}
	if user.Updated == nil || user.Updated.Micros() != 1502138686_000000 {
		t.Errorf("Updated = %v", user.Updated)
	}
	// The profile ignores keys it does not know; the user does not.
	if user.Profile == nil || user.Profile.RealName != "Egon Spengler" {
		t.Fatalf("Profile = %+v", user.Profile)
	}
	if user.Profile.Fields == nil || len(user.Profile.Fields) != 0 {
		t.Errorf("Fields = %#v, want empty map", user.Profile.Fields)
	}
}

func TestDecodeStructuralErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		decode  func([]byte) error
		payload string
		kind    union.FieldErrorKind
		field   string
	}{
		{
			name: "unknown top-level key",
			decode: func(data []byte) error {
				_, err := Decode[ChatPostMessageResponse](MethodChatPostMessage, data)
				return err
			},
			payload: `{"ok":true,"channel":"C024BE91L","ts":"1.000000","message":{"type":"message","text":"hi","ts":"1.000000"},"surprise":1}`,
			kind:    union.UnknownField,
			field:   "surprise",
		},
		{
			name: "missing required key",
			decode: func(data []byte) error {
				_, err := Decode[AuthTestResponse](MethodAuthTest, data)
				return err
			},
			payload: `{"ok":true,"url":"https://example.slack.com/","team":"Example","user":"egon","team_id":"T024BE7LD"}`,
			kind:    union.MissingField,
			field:   "user_id",
		},
		{
			name: "strict record inside response",
			decode: func(data []byte) error {
				_, err := Decode[UsersInfoResponse](MethodUsersInfo, data)
				return err
			},
			payload: `{"ok":true,"user":{"id":"U024BE7LH","name":"egon","is_stranger":true}}`,
			kind:    union.UnknownField,
			field:   "is_stranger",
		},
		{
			name: "wrong identifier namespace",
			decode: func(data []byte) error {
				_, err := Decode[ConversationsMembersResponse](MethodConversationsMembers, data)
				return err
			},
			payload: `{"ok":true,"members":["U024BE7LH","C024BE91L"]}`,
			kind:    union.InvalidValue,
		},
		{
			name: "type mismatch",
			decode: func(data []byte) error {
				_, err := Decode[ConversationsHistoryResponse](MethodConversationsHistory, data)
				return err
			},
			payload: `{"ok":true,"messages":[],"has_more":"yes","pin_count":0}`,
			kind:    union.TypeMismatch,
			field:   "has_more",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := test.decode([]byte(test.payload))
			if err == nil {
				t.Fatal("expected error")
			}
			var fieldErr *union.FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("error %v (%T) does not contain *union.FieldError", err, err)
			}
			if fieldErr.Kind != test.kind {
				t.Errorf("Kind = %s, want %s (%v)", fieldErr.Kind, test.kind, err)
			}
			if test.field != "" && fieldErr.Field != test.field {
				t.Errorf("Field = %q, want %q", fieldErr.Field, test.field)
			}
		})
	}
}

func TestDecodeMalformedEnvelope(t *testing.T) {
	t.Parallel()
	_, err := Decode[APITestResponse](MethodAPITest, []byte(`{"ok":tru`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "decoding api.test response envelope") {
		t.Errorf("error = %v", err)
	}
	var fieldErr *union.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Kind != union.Malformed {
		t.Errorf("error = %v, want malformed", err)
	}
}

func TestDecodePinsList(t *testing.T) {
	t.Parallel()

	payload := `{
		"ok": true,
		"items": [
			{
				"type": "message",
				"channel": "C024BE91L",
				"created": 1508881078,
				"created_by": "U024BE7LH",
				"message": {"type": "message", "user": "U024BE7LH", "text": "pin me", "ts": "1508880991.000144"}
			},
			{
				"type": "file",
				"created": 1508881078,
				"file": {"id": "F0S43PZDF", "name": "tedair.gif", "future_field": 1}
			}
		]
	}`
	response, err := Decode[PinsListResponse](MethodPinsList, []byte(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(response.Items) != 2 {
		t.Fatalf("got %d items", len(response.Items))
	}

	message, ok := response.Items[0].Value.(ItemMessage)
	if !ok {
		t.Fatalf("item 0 is %T", response.Items[0].Value)
	}
	if got := response.Items[0].Type(); got != ItemTypeMessage {
		t.Errorf("Type() = %q", got)
	}
	if message.Message.Subtype() != schema.MessageSubtypeStandard {
		t.Errorf("nested subtype = %q", message.Message.Subtype())
	}

	file, ok := response.Items[1].Value.(ItemFile)
	if !ok {
		t.Fatalf("item 1 is %T", response.Items[1].Value)
	}
	if file.File.Name != "tedair.gif" {
		t.Errorf("file name = %q", file.File.Name)
	}
	if got := response.Items[1].Type(); got != ItemTypeFile {
		t.Errorf("Type() = %q", got)
	}
}

func TestDecodePinsListUnknownItem(t *testing.T) {
	t.Parallel()
	payload := `{"ok":true,"items":[{"type":"canvas","canvas":{}}]}`
	_, err := Decode[PinsListResponse](MethodPinsList, []byte(payload))
	if !union.IsUnknownVariant(err) {
		t.Fatalf("error = %v, want unknown variant", err)
	}
}

func TestItemRoundTrip(t *testing.T) {
	t.Parallel()
	original := `{
		"type": "file",
		"file": {"id": "F0S43PZDF", "name": "notes.txt"}
	}`
	var item Item
	if err := item.UnmarshalJSON([]byte(original)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	encoded, err := item.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	testutil.RequireJSONEqual(t, encoded, testutil.CompactJSON(t, original))
	var again Item
	if err := again.UnmarshalJSON(encoded); err != nil {
		t.Fatalf("UnmarshalJSON(%s): %v", encoded, err)
	}
	if !reflect.DeepEqual(item, again) {
		t.Errorf("round trip changed the item:\n%+v\n%+v", item, again)
	}

	var empty Item
	if data, err := empty.MarshalJSON(); err != nil || string(data) != "null" {
		t.Errorf("empty item = %s, %v", data, err)
	}
}

func TestDecodeRTMConnect(t *testing.T) {
	t.Parallel()

	payload := `{
		"ok": true,
		"url": "wss://wss.slack.com/websocket/abc",
		"team": {"id": "T024BE7LD", "name": "Example", "domain": "example"},
		"self": {"id": "U024BE7LH", "name": "egon"}
	}`
	response, err := Decode[RTMConnectResponse](MethodRTMConnect, []byte(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if response.Self.Name != "egon" || response.Team.Domain != "example" {
		t.Errorf("response = %+v", response)
	}
	if response.Team.ID == nil || response.Team.ID.String() != "T024BE7LD" {
		t.Errorf("team id = %v", response.Team.ID)
	}

	// Self and team are nested structs without their own decoder, so
	// the response's strictness reaches them.
	_, err = Decode[RTMConnectResponse](MethodRTMConnect,
		[]byte(`{"ok":true,"url":"wss://x","team":{"name":"Example","icon":{}},"self":{"id":"U024BE7LH","name":"egon"}}`))
	var fieldErr *union.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Kind != union.UnknownField || fieldErr.Field != "icon" {
		t.Errorf("error = %v, want unknown field icon", err)
	}
}

func TestDecodeResponseMetadata(t *testing.T) {
	t.Parallel()
	payload := `{"ok":true,"channels":[],"response_metadata":{"next_cursor":"dGVhbTpDMDYxRkE1UEI="},"warning":"superfluous_charset"}`
	response, err := Decode[ConversationsListResponse](MethodConversationsList, []byte(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if response.ResponseMetadata == nil || response.ResponseMetadata.NextCursor != "dGVhbTpDMDYxRkE1UEI=" {
		t.Errorf("ResponseMetadata = %+v", response.ResponseMetadata)
	}
	if response.Warning != "superfluous_charset" {
		t.Errorf("Warning = %q", response.Warning)
	}
}

func TestMethods(t *testing.T) {
	t.Parallel()

	methods := Methods()
	if len(methods) == 0 {
		t.Fatal("no methods registered")
	}
	for i := 1; i < len(methods); i++ {
		if methods[i-1].Name >= methods[i].Name {
			t.Errorf("methods not sorted: %q before %q", methods[i-1].Name, methods[i].Name)
		}
	}

	method, ok := Lookup(MethodIMHistory)
	if !ok {
		t.Fatalf("Lookup(%q) failed", MethodIMHistory)
	}
	if method.Response != reflect.TypeFor[HistoryResponse]() {
		t.Errorf("Response = %v", method.Response)
	}
	if _, ok := Lookup("chat.telepathy"); ok {
		t.Error("Lookup found an unregistered method")
	}
}

func TestDecodeMethod(t *testing.T) {
	t.Parallel()

	value, err := DecodeMethod(MethodEmojiList, []byte(`{"ok":true,"emoji":{"bowtie":"https://example.com/bowtie.png","shipit":"alias:squirrel"}}`))
	if err != nil {
		t.Fatalf("DecodeMethod: %v", err)
	}
	response, ok := value.(EmojiListResponse)
	if !ok {
		t.Fatalf("value is %T", value)
	}
	if response.Emoji["shipit"] != "alias:squirrel" {
		t.Errorf("Emoji = %v", response.Emoji)
	}

	if _, err := DecodeMethod("chat.telepathy", []byte(`{"ok":true}`)); err == nil {
		t.Error("expected error for unknown method")
	}

	_, err = DecodeMethod(MethodChatDelete, []byte(`{"ok":false,"error":"message_not_found"}`))
	if !IsAPIError(err, ErrCodeMessageNotFound) {
		t.Errorf("error = %v, want message_not_found", err)
	}
}

func TestDecodeDndMethods(t *testing.T) {
	t.Parallel()

	info, err := Decode[DndInfoResponse](MethodDndInfo, []byte(`{
		"ok": true,
		"dnd_enabled": true,
		"next_dnd_start_ts": 1450416600,
		"next_dnd_end_ts": 1450452600,
		"snooze_enabled": true,
		"snooze_endtime": 1450416600,
		"snooze_remaining": 1196
	}`))
	if err != nil {
		t.Fatalf("dnd.info: %v", err)
	}
	if info.NextDndStartTS == nil || info.NextDndStartTS.Seconds() != 1450416600 || info.SnoozeRemaining != 1196 {
		t.Errorf("dnd.info = %+v", info)
	}

	snooze, err := Decode[DndSetSnoozeResponse](MethodDndSetSnooze, []byte(`{"ok":true,"snooze_enabled":false,"snooze_endtime":0,"snooze_remaining":0}`))
	if err != nil {
		t.Fatalf("dnd.setSnooze with zero values: %v", err)
	}
	if !snooze.SnoozeEndtime.IsZero() {
		t.Errorf("SnoozeEndtime = %v", snooze.SnoozeEndtime)
	}

	team, err := Decode[DndTeamInfoResponse](MethodDndTeamInfo, []byte(`{
		"ok": true,
		"users": {
			"U023BECGF": {"dnd_enabled": true, "next_dnd_start_ts": 1450387800, "next_dnd_end_ts": 1450423800},
			"W058CJVAA": {"dnd_enabled": false, "next_dnd_start_ts": 0, "next_dnd_end_ts": 0}
		}
	}`))
	if err != nil {
		t.Fatalf("dnd.teamInfo: %v", err)
	}
	if status := team.Users["U023BECGF"]; !status.DndEnabled || status.NextDndEndTS.Seconds() != 1450423800 {
		t.Errorf("U023BECGF = %+v", status)
	}

	_, err = Decode[DndTeamInfoResponse](MethodDndTeamInfo, []byte(`{"ok":true,"users":{"U1":{"dnd_enabled":false,"next_dnd_start_ts":0}}}`))
	var fieldError *union.FieldError
	if !errors.As(err, &fieldError) || fieldError.Kind != union.MissingField || fieldError.Field != "users[U1].next_dnd_end_ts" {
		t.Errorf("absent timestamp in map entry: %v", err)
	}
}

func TestDecodeSearchMessages(t *testing.T) {
	t.Parallel()

	payload := `{
		"ok": true,
		"query": "deploy",
		"messages": {
			"matches": [
				{"type": "message", "user": "U024BE7LH", "text": "deploy done", "ts": "1508880991.000144", "channel": "C024BE91L"}
			],
			"paging": {"count": 20, "total": 1, "page": 1, "pages": 1},
			"total": 1
		}
	}`
	response, err := Decode[SearchMessagesResponse](MethodSearchMessages, []byte(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if response.Messages == nil || len(response.Messages.Matches) != 1 || response.Messages.Total != 1 {
		t.Fatalf("messages = %+v", response.Messages)
	}
	if got := response.Messages.Matches[0].Subtype(); got != schema.MessageSubtypeStandard {
		t.Errorf("match subtype = %q", got)
	}

	_, err = Decode[SearchFilesResponse](MethodSearchFiles, []byte(`{"ok":true,"query":"q","files":{"matches":[],"total":0,"extra":1}}`))
	var fieldError *union.FieldError
	if !errors.As(err, &fieldError) || fieldError.Kind != union.UnknownField {
		t.Errorf("unknown key in results section: %v", err)
	}
}

func TestDecodeStarsList(t *testing.T) {
	t.Parallel()

	payload := `{
		"ok": true,
		"items": [
			{"type": "channel", "channel": "C024BE91L"},
			{"type": "im", "channel": "D024BFF1M"},
			{"type": "group", "group": "G024BE91L"},
			{"type": "file", "file": {"id": "F0S43PZDF"}}
		],
		"paging": {"count": 100, "total": 4, "page": 1, "pages": 1}
	}`
	response, err := Decode[StarsListResponse](MethodStarsList, []byte(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []string{ItemTypeChannel, ItemTypeIM, ItemTypeGroup, ItemTypeFile}
	if len(response.Items) != len(want) {
		t.Fatalf("got %d items", len(response.Items))
	}
	for i, item := range response.Items {
		if item.Type() != want[i] {
			t.Errorf("item %d Type() = %q, want %q", i, item.Type(), want[i])
		}
	}
	if im, ok := response.Items[1].Value.(ItemIM); !ok || im.Channel.String() != "D024BFF1M" {
		t.Errorf("im channel = %v", im.Channel)
	}

	_, err = Decode[StarsListResponse](MethodStarsList, []byte(`{"ok":true,"items":[{"type":"im","channel":"C024BE91L"}]}`))
	if !union.IsVariantDecodeFailed(err) {
		t.Errorf("channel ID in an im item: %v", err)
	}
}

func TestDecodeTeamProfileGet(t *testing.T) {
	t.Parallel()

	payload := `{
		"ok": true,
		"profile": {
			"fields": [
				{"id": "Xf06054AAA", "ordering": 0, "label": "Phone extension", "hint": "Enter the extension", "type": "text", "possible_values": null, "options": null, "is_hidden": true},
				{"id": "Xf06054BBB", "ordering": 1, "label": "Office", "type": "options_list", "possible_values": ["Berlin", "Oslo"]}
			]
		}
	}`
	response, err := Decode[TeamProfileGetResponse](MethodTeamProfileGet, []byte(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	fields := response.Profile.Fields
	if len(fields) != 2 || fields[0].Ordering != 0 || !fields[0].IsHidden || len(fields[1].PossibleValues) != 2 {
		t.Errorf("fields = %+v", fields)
	}

	_, err = Decode[TeamProfileGetResponse](MethodTeamProfileGet, []byte(`{"ok":true,"profile":{"fields":[{"id":"Xf1","ordering":0}]}}`))
	var fieldError *union.FieldError
	if !errors.As(err, &fieldError) || fieldError.Kind != union.MissingField || fieldError.Field != "profile.fields[0].label" {
		t.Errorf("field without a label: %v", err)
	}
}

func TestDecodeUsergroupsUsers(t *testing.T) {
	t.Parallel()

	list, err := Decode[UsergroupsUsersListResponse](MethodUsergroupsUsersList, []byte(`{"ok":true,"users":["U060R4BJ4","U123A4BC5"]}`))
	if err != nil {
		t.Fatalf("usergroups.users.list: %v", err)
	}
	if len(list.Users) != 2 || list.Users[1].String() != "U123A4BC5" {
		t.Errorf("users = %v", list.Users)
	}

	_, err = Decode[UsergroupsUsersListResponse](MethodUsergroupsUsersList, []byte(`{"ok":true,"users":["C060R4BJ4"]}`))
	var fieldError *union.FieldError
	if !errors.As(err, &fieldError) || fieldError.Kind != union.InvalidValue {
		t.Errorf("channel ID in user list: %v", err)
	}

	update, err := Decode[UsergroupsUsersUpdateResponse](MethodUsergroupsUsersUpdate, []byte(`{"ok":true,"usergroup":{"id":"S0616NG6M","name":"Marketing Team","handle":"marketing-team"}}`))
	if err != nil {
		t.Fatalf("usergroups.users.update: %v", err)
	}
	if update.Usergroup.Handle != "marketing-team" {
		t.Errorf("usergroup = %+v", update.Usergroup)
	}
}
