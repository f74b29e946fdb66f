// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/slackwire/slackwire/lib/ref"
	"github.com/slackwire/slackwire/lib/testutil"
	"github.com/slackwire/slackwire/lib/timestamp"
	"github.com/slackwire/slackwire/lib/union"
)

func fieldError(t *testing.T, err error) *union.FieldError {
	t.Helper()
	var fieldErr *union.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("error %v (%T) does not contain a *union.FieldError", err, err)
	}
	return fieldErr
}

func TestDecodeStandardMessage(t *testing.T) {
	t.Parallel()

	payload := `{
		"type": "message",
		"channel": "C024BE91L",
		"user": "U024BE7LH",
		"text": "Hello world",
		"ts": "1355517523.000005",
		"client_msg_id": "0d7a5e2c-9b4e-4c2f-8d43-0a5bb2b3d6f1",
		"edited": {"user": "U024BE7LH", "ts": "1355517536.000001", "hash": "x"}
	}`
	message, err := DecodeMessage([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if got := message.Subtype(); got != MessageSubtypeStandard {
		t.Errorf("Subtype() = %q, want %q", got, MessageSubtypeStandard)
	}

	standard, ok := message.Value.(MessageStandard)
	if !ok {
		t.Fatalf("Value is %T, want MessageStandard", message.Value)
	}
	if standard.Text != "Hello world" {
		t.Errorf("Text = %q", standard.Text)
	}
	if standard.User == nil || *standard.User != ref.MustParse[ref.User]("U024BE7LH") {
		t.Errorf("User = %v", standard.User)
	}
	if kind := standard.Channel.Kind(); kind != ref.ConversationChannel {
		t.Errorf("Channel kind = %v, want channel", kind)
	}
	if standard.TS == nil || standard.TS.Micros() != 1355517523000005 {
		t.Errorf("TS = %v", standard.TS)
	}
	if standard.ClientMsgID == nil || standard.ClientMsgID.String() != "0d7a5e2c-9b4e-4c2f-8d43-0a5bb2b3d6f1" {
		t.Errorf("ClientMsgID = %v", standard.ClientMsgID)
	}
	// Edited is lenient even inside a strict message.
	if standard.Edited == nil || standard.Edited.TS == nil {
		t.Fatalf("Edited = %+v", standard.Edited)
	}
}

func TestDecodeMessageSubtypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    reflect.Type
	}{
		{
			name:    "bot_message",
			payload: `{"type":"message","subtype":"bot_message","bot_id":"B1","username":"deploy","text":"done","ts":"1.000001","icons":{"image_48":"https://example.com/48.png"}}`,
			want:    reflect.TypeFor[MessageBotMessage](),
		},
		{
			name:    "channel_join",
			payload: `{"type":"message","subtype":"channel_join","user":"U1","text":"<@U1> has joined the channel","ts":"2.000000","inviter":"U2"}`,
			want:    reflect.TypeFor[MessageChannelJoin](),
		},
		{
			name:    "group_leave",
			payload: `{"type":"message","subtype":"group_leave","user":"U1","text":"left","ts":"3.5"}`,
			want:    reflect.TypeFor[MessageGroupLeave](),
		},
		{
			name:    "channel_topic ignores unknown keys",
			payload: `{"type":"message","subtype":"channel_topic","topic":"release week","text":"set the topic","ts":"4.000000","added_later":true}`,
			want:    reflect.TypeFor[MessageChannelTopic](),
		},
		{
			name:    "file_share",
			payload: `{"subtype":"file_share","text":"shared","file":{"id":"F1","name":"notes.txt","created":1525306421,"thumb_tiny":"x"},"upload":true,"user":"U1"}`,
			want:    reflect.TypeFor[MessageFileShare](),
		},
		{
			name:    "null subtype is standard",
			payload: `{"subtype":null,"text":"plain","ts":"5.000001"}`,
			want:    reflect.TypeFor[MessageStandard](),
		},
		{
			name:    "me_message",
			payload: `{"subtype":"me_message","channel":"D1","text":"waves","user":"U1"}`,
			want:    reflect.TypeFor[MessageMe](),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			message, err := DecodeMessage([]byte(test.payload))
			if err != nil {
				t.Fatalf("DecodeMessage: %v", err)
			}
			if got := reflect.TypeOf(message.Value); got != test.want {
				t.Errorf("Value type = %v, want %v", got, test.want)
			}
		})
	}
}

func TestMessageStrictVariantsRejectUnknownKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		variant string
		field   string
	}{
		{
			name:    "standard",
			payload: `{"text":"hi","ts":"1.000001","brand_new_key":1}`,
			variant: MessageSubtypeStandard,
			field:   "brand_new_key",
		},
		{
			name:    "channel_leave",
			payload: `{"subtype":"channel_leave","text":"bye","user":"U1","reason":"idle"}`,
			variant: MessageSubtypeChannelLeave,
			field:   "reason",
		},
		{
			name:    "nested reply",
			payload: `{"text":"parent","replies":[{"user":"U1","ts":"1.000002","extra":true}]}`,
			variant: MessageSubtypeStandard,
			field:   "extra",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeMessage([]byte(test.payload))
			if err == nil {
				t.Fatal("expected an error")
			}
			if union.IsUnknownVariant(err) {
				t.Fatalf("unknown key reported as unknown variant: %v", err)
			}
			var variantErr *union.VariantError
			if !errors.As(err, &variantErr) {
				t.Fatalf("error %v is not a *union.VariantError", err)
			}
			if variantErr.Variant != test.variant {
				t.Errorf("Variant = %q, want %q", variantErr.Variant, test.variant)
			}
			fieldErr := fieldError(t, err)
			if fieldErr.Kind != union.UnknownField {
				t.Errorf("Kind = %s, want %s", fieldErr.Kind, union.UnknownField)
			}
			if fieldErr.Field != test.field {
				t.Errorf("Field = %q, want %q", fieldErr.Field, test.field)
			}
		})
	}
}

func TestUnknownMessageSubtype(t *testing.T) {
	t.Parallel()

	_, err := DecodeMessage([]byte(`{"subtype":"huddle_thread","text":"?"}`))
	if !union.IsUnknownVariant(err) {
		t.Fatalf("expected unknown variant, got %v", err)
	}
	var unknown *union.UnknownVariantError
	errors.As(err, &unknown)
	if unknown.Tag != "huddle_thread" || unknown.TagField != "subtype" {
		t.Errorf("UnknownVariantError = %+v", unknown)
	}
	if len(unknown.Known) != len(MessageSubtypes()) {
		t.Errorf("Known has %d entries, want %d", len(unknown.Known), len(MessageSubtypes()))
	}
}

func TestMessageChangedCarriesBothVersions(t *testing.T) {
	t.Parallel()

	payload := `{
		"type": "message",
		"subtype": "message_changed",
		"hidden": true,
		"channel": "C024BE91L",
		"ts": "1358878755.000001",
		"event_ts": "1358878755.000001",
		"message": {
			"type": "message",
			"user": "U024BE7LH",
			"text": "Hello, world!",
			"ts": "1355517523.000005",
			"edited": {"user": "U024BE7LH", "ts": "1358878755.000001"}
		},
		"previous_message": {
			"type": "message",
			"subtype": "bot_message",
			"bot_id": "B1",
			"text": "Hello world",
			"ts": "1355517523.000005"
		}
	}`
	message, err := DecodeMessage([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	changed, ok := message.Value.(MessageChanged)
	if !ok {
		t.Fatalf("Value is %T, want MessageChanged", message.Value)
	}
	if !changed.Hidden {
		t.Error("Hidden = false")
	}
	if changed.Message == nil || changed.Message.Subtype() != MessageSubtypeStandard {
		t.Errorf("Message = %+v, want a standard message", changed.Message)
	}
	if changed.PreviousMessage == nil || changed.PreviousMessage.Subtype() != MessageSubtypeBotMessage {
		t.Errorf("PreviousMessage = %+v, want a bot_message", changed.PreviousMessage)
	}
}

func TestMessageChangedMissingRequiredField(t *testing.T) {
	t.Parallel()

	_, err := DecodeMessage([]byte(`{"subtype":"message_changed","channel":"C1","ts":"1.000000"}`))
	fieldErr := fieldError(t, err)
	if fieldErr.Kind != union.MissingField || fieldErr.Field != "event_ts" {
		t.Errorf("FieldError = %s %q, want missing_field event_ts", fieldErr.Kind, fieldErr.Field)
	}
}

func TestNestedMessageUnknownSubtypeSurfaces(t *testing.T) {
	t.Parallel()

	payload := `{"subtype":"message_replied","event_ts":"1.000000","ts":"1.000000","message":{"subtype":"not_yet_invented"}}`
	_, err := DecodeMessage([]byte(payload))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !union.IsVariantDecodeFailed(err) {
		t.Errorf("outer error is not a variant decode failure: %v", err)
	}
	if !union.IsUnknownVariant(err) {
		t.Errorf("inner unknown subtype not reachable through the chain: %v", err)
	}
}

func TestDecodeEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    reflect.Type
	}{
		{"hello", `{"type":"hello"}`, reflect.TypeFor[EventHello]()},
		{"user_typing", `{"type":"user_typing","channel":"D024BE91L","user":"U024BE7LH"}`, reflect.TypeFor[EventUserTyping]()},
		{
			"channel_marked",
			`{"type":"channel_marked","channel":"C024BE91L","ts":"1401383885.000061","unread_count":0,"unread_count_display":0,"num_mentions":0,"num_mentions_display":0,"mention_count":0,"mention_count_display":0,"event_ts":"1401383885.000062"}`,
			reflect.TypeFor[EventChannelMarked](),
		},
		{
			"dnd_updated_user",
			`{"type":"dnd_updated_user","user":"U1","dnd_status":{"dnd_enabled":true,"next_dnd_start_ts":1450387800,"next_dnd_end_ts":1450423800},"event_ts":"1450387800.000001"}`,
			reflect.TypeFor[EventDndUpdatedUser](),
		},
		{
			"file_shared",
			`{"type":"file_shared","file_id":"F0S43PZDF","user_id":"U024BE7LH","file":{"id":"F0S43PZDF"},"event_ts":"1361482916.000004"}`,
			reflect.TypeFor[EventFileShared](),
		},
		{
			"apps_changed",
			`{"type":"apps_changed","app":{"id":"A1","name":"Deployer","icons":{"image_32":"https://example.com/32.png"}},"event_ts":"1.000001"}`,
			reflect.TypeFor[EventAppsChanged](),
		},
		{
			"user_change",
			`{"type":"user_change","user":{"id":"U1","name":"ana","profile":{"fields":[],"real_name":"Ana"}},"cache_ts":1500000000,"event_ts":"1500000000.000001"}`,
			reflect.TypeFor[EventUserChange](),
		},
		{
			"message",
			`{"type":"message","channel":"C1","user":"U1","text":"hi","ts":"1.000001"}`,
			reflect.TypeFor[EventMessage](),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			event, err := DecodeEvent([]byte(test.payload))
			if err != nil {
				t.Fatalf("DecodeEvent: %v", err)
			}
			if got := reflect.TypeOf(event.Value); got != test.want {
				t.Errorf("Value type = %v, want %v", got, test.want)
			}
			if event.Type() != test.name {
				t.Errorf("Type() = %q, want %q", event.Type(), test.name)
			}
		})
	}
}

func TestEventZeroValuesArePresent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   string
		wantField string
	}{
		{
			name:    "zero string timestamp",
			payload: `{"type":"channel_marked","channel":"C1","ts":"0.000000","event_ts":"1.000000"}`,
		},
		{
			name:    "zero integer timestamps",
			payload: `{"type":"dnd_updated_user","user":"U1","dnd_status":{"dnd_enabled":false,"next_dnd_start_ts":0,"next_dnd_end_ts":0},"event_ts":"1.000000"}`,
		},
		{
			name:      "absent timestamp",
			payload:   `{"type":"channel_marked","channel":"C1","event_ts":"1.000000"}`,
			wantField: "ts",
		},
		{
			name:      "absent nested timestamp",
			payload:   `{"type":"dnd_updated_user","user":"U1","dnd_status":{"next_dnd_start_ts":0},"event_ts":"1.000000"}`,
			wantField: "dnd_status.next_dnd_end_ts",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			event, err := DecodeEvent([]byte(test.payload))
			if test.wantField == "" {
				if err != nil {
					t.Fatalf("DecodeEvent: %v", err)
				}
				if event.Value == nil {
					t.Fatal("DecodeEvent returned an empty event")
				}
				return
			}
			if !union.IsVariantDecodeFailed(err) {
				t.Fatalf("expected a variant decode failure, got %v", err)
			}
			fieldErr := fieldError(t, err)
			if fieldErr.Kind != union.MissingField || fieldErr.Field != test.wantField {
				t.Errorf("FieldError = %s %q, want missing_field %q", fieldErr.Kind, fieldErr.Field, test.wantField)
			}
		})
	}

	event, err := DecodeEvent([]byte(`{"type":"channel_marked","channel":"C1","ts":"0.000000","event_ts":"1.000000"}`))
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	marked, ok := event.Value.(EventChannelMarked)
	if !ok {
		t.Fatalf("Value = %T, want EventChannelMarked", event.Value)
	}
	if !marked.TS.IsZero() {
		t.Errorf("TS = %v, want zero", marked.TS)
	}
}

func TestEventMessageWrapsMessage(t *testing.T) {
	t.Parallel()

	event, err := DecodeEvent([]byte(`{"type":"message","subtype":"channel_join","user":"U1","text":"joined","channel":"C1"}`))
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	wrapped, ok := event.Value.(EventMessage)
	if !ok {
		t.Fatalf("Value is %T, want EventMessage", event.Value)
	}
	join, ok := wrapped.Value.(MessageChannelJoin)
	if !ok {
		t.Fatalf("message is %T, want MessageChannelJoin", wrapped.Value)
	}
	// The event's "type" is consumed by the event table.
	if join.Type != "" {
		t.Errorf("Type = %q, want it stripped", join.Type)
	}
}

func TestEventErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing type", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeEvent([]byte(`{"user":"U1"}`))
		var missing *union.MissingTagError
		if !errors.As(err, &missing) {
			t.Fatalf("expected *union.MissingTagError, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeEvent([]byte(`{"type":"team_join","user":{}}`))
		if !union.IsUnknownVariant(err) {
			t.Fatalf("expected unknown variant, got %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeEvent([]byte(`{"type":"user_typing","channel":"C1"}`))
		if !union.IsVariantDecodeFailed(err) {
			t.Fatalf("expected variant decode failure, got %v", err)
		}
		fieldErr := fieldError(t, err)
		if fieldErr.Kind != union.MissingField || fieldErr.Field != "user" {
			t.Errorf("FieldError = %s %q, want missing_field user", fieldErr.Kind, fieldErr.Field)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeEvent([]byte(`{"type":"hello","region":"us-east-1"}`))
		fieldErr := fieldError(t, err)
		if fieldErr.Kind != union.UnknownField || fieldErr.Field != "region" {
			t.Errorf("FieldError = %s %q, want unknown_field region", fieldErr.Kind, fieldErr.Field)
		}
	})

	t.Run("wrong identifier namespace", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeEvent([]byte(`{"type":"user_typing","channel":"C1","user":"B1"}`))
		if !errors.Is(err, ref.ErrInvalidPrefix) {
			t.Errorf("expected ref.ErrInvalidPrefix in chain, got %v", err)
		}
	})

	t.Run("integer where string expected", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeEvent([]byte(`{"type":"reaction_added","user":"U1","reaction":7,"item_user":"U2","event_ts":"1.0","ts":"1.0","item":{"type":"hello"}}`))
		fieldErr := fieldError(t, err)
		if fieldErr.Kind != union.TypeMismatch {
			t.Errorf("Kind = %s, want %s", fieldErr.Kind, union.TypeMismatch)
		}
	})
}

func TestReactionAddedItemIsAnEvent(t *testing.T) {
	t.Parallel()

	payload := `{
		"type": "reaction_added",
		"user": "U024BE7LH",
		"reaction": "thumbsup",
		"item_user": "U0G9QF9C6",
		"item": {"type": "message", "channel": "C0G9QF9GZ", "ts": "1360782400.498405"},
		"event_ts": "1360782804.083113",
		"ts": "1360782804.083113"
	}`
	event, err := DecodeEvent([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	reaction, ok := event.Value.(EventReactionAdded)
	if !ok {
		t.Fatalf("Value is %T, want EventReactionAdded", event.Value)
	}
	if reaction.Item == nil || reaction.Item.Type() != EventTypeMessage {
		t.Fatalf("Item = %+v, want a message event", reaction.Item)
	}
	inner := reaction.Item.Value.(EventMessage).Value.(MessageStandard)
	if inner.TS == nil || *inner.TS != timestamp.MustParse("1360782400.498405") {
		t.Errorf("inner TS = %v", inner.TS)
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	again, err := DecodeEvent(encoded)
	if err != nil {
		t.Fatalf("DecodeEvent(encoded): %v\n%s", err, encoded)
	}
	if !reflect.DeepEqual(again, event) {
		t.Errorf("re-decoded event differs:\n got %+v\nwant %+v", again, event)
	}
}

func TestReactionAddedNestedFailureIsClassified(t *testing.T) {
	t.Parallel()

	payload := `{"type":"reaction_added","user":"U1","reaction":"x","item_user":"U2","event_ts":"1.0","ts":"1.0","item":{"type":"star_added"}}`
	_, err := DecodeEvent([]byte(payload))
	if !union.IsVariantDecodeFailed(err) {
		t.Fatalf("expected variant decode failure, got %v", err)
	}
	if !union.IsUnknownVariant(err) {
		t.Errorf("nested unknown event type not reachable: %v", err)
	}
	if fieldError(t, err).Kind != union.InvalidValue {
		t.Errorf("nested union failure should classify as invalid_value: %v", err)
	}
}

func TestUserProfileFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantNil bool
		wantLen int
		wantErr bool
	}{
		{name: "empty array", payload: `{"fields": []}`, wantLen: 0},
		{name: "empty map", payload: `{"fields": {}}`, wantLen: 0},
		{name: "non-empty map", payload: `{"fields": {"Xf01": {"alt": "foo", "label": "bar"}}}`, wantLen: 1},
		{name: "null", payload: `{"fields": null}`, wantNil: true},
		{name: "absent", payload: `{}`, wantNil: true},
		{name: "non-empty array", payload: `{"fields": [{"alt": "foo"}]}`, wantErr: true},
		{name: "wrong shape", payload: `{"fields": "none"}`, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			var profile UserProfile
			err := json.Unmarshal([]byte(test.payload), &profile)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got fields %v", profile.Fields)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if test.wantNil {
				if profile.Fields != nil {
					t.Errorf("Fields = %v, want nil", profile.Fields)
				}
				return
			}
			if profile.Fields == nil {
				t.Fatal("Fields = nil, want a map")
			}
			if len(profile.Fields) != test.wantLen {
				t.Errorf("len(Fields) = %d, want %d", len(profile.Fields), test.wantLen)
			}
		})
	}
}

func TestChannelStrictness(t *testing.T) {
	t.Parallel()

	base := `{"id":"C024BE91L","name":"fun","created":1360782804,"creator":"U024BE7LH",` +
		`"purpose":{"value":"Fun times","creator":"U024BE7LH","last_set":"1360782804.000001","fresh":1},` +
		`"topic":{"value":"","creator":"","last_set":0}`

	var channel Channel
	if err := json.Unmarshal([]byte(base+`}`), &channel); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if channel.ID.String() != "C024BE91L" || channel.Purpose == nil || channel.Purpose.Value != "Fun times" {
		t.Errorf("Channel = %+v", channel)
	}
	if channel.Created == nil || channel.Created.Seconds() != 1360782804 {
		t.Errorf("Created = %v", channel.Created)
	}

	err := json.Unmarshal([]byte(base+`,"is_frozen":true}`), &channel)
	fieldErr := fieldError(t, err)
	if fieldErr.Kind != union.UnknownField || fieldErr.Field != "is_frozen" {
		t.Errorf("FieldError = %s %q, want unknown_field is_frozen", fieldErr.Kind, fieldErr.Field)
	}

	err = json.Unmarshal([]byte(`{"name":"fun"}`), &channel)
	fieldErr = fieldError(t, err)
	if fieldErr.Kind != union.MissingField || fieldErr.Field != "id" {
		t.Errorf("FieldError = %s %q, want missing_field id", fieldErr.Kind, fieldErr.Field)
	}
}

func TestMessageMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	payloads := []string{
		`{"type":"message","text":"plain","ts":"1.000001","user":"U1","reactions":[{"name":"tada","count":1,"users":["U2"]}]}`,
		`{"subtype":"channel_name","name":"new","old_name":"old","text":"renamed","ts":"2.000000"}`,
		`{"subtype":"thread_broadcast","text":"also sent","root":{"text":"parent","ts":"1.000000"},"ts":"3.000000"}`,
	}
	for _, payload := range payloads {
		message, err := DecodeMessage([]byte(payload))
		if err != nil {
			t.Fatalf("DecodeMessage(%s): %v", payload, err)
		}
		encoded, err := json.Marshal(message)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		testutil.RequireJSONEqual(t, encoded, testutil.CompactJSON(t, payload))
		again, err := DecodeMessage(encoded)
		if err != nil {
			t.Fatalf("DecodeMessage(%s): %v", encoded, err)
		}
		if !reflect.DeepEqual(again, message) {
			t.Errorf("round trip of %s changed the value:\n got %+v\nwant %+v", payload, again, message)
		}
	}
}

func TestEmptyWrappersMarshalNull(t *testing.T) {
	t.Parallel()

	for _, value := range []any{Message{}, Event{}} {
		data, err := json.Marshal(value)
		if err != nil {
			t.Fatalf("Marshal(%T): %v", value, err)
		}
		if string(data) != "null" {
			t.Errorf("Marshal(%T) = %s, want null", value, data)
		}
	}
}
