// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/zeebo/blake3"
)

// Fingerprint is the BLAKE3 keyed hash of a compacted payload. Two
// payloads that differ only in whitespace have the same fingerprint.
type Fingerprint [32]byte

// payloadDomainKey is the ASCII domain name zero-padded to 32 bytes.
// Changing it changes every fingerprint.
var payloadDomainKey = [32]byte{
	's', 'l', 'a', 'c', 'k', 'w', 'i', 'r', 'e', '.', 'c', 'a', 'p', 't', 'u', 'r',
	'e', '.', 'p', 'a', 'y', 'l', 'o', 'a', 'd', 0, 0, 0, 0, 0, 0, 0,
}

// FingerprintPayload hashes payload after stripping insignificant
// whitespace. Payloads that are not valid JSON are hashed as is.
func FingerprintPayload(payload []byte) Fingerprint {
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, payload); err == nil {
		payload = compacted.Bytes()
	}

	hasher, err := blake3.NewKeyed(payloadDomainKey[:])
	if err != nil {
		panic("capture: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(payload)
	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint
}

// String returns the hex encoding.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first 12 hex digits, for display.
func (f Fingerprint) Short() string {
	return f.String()[:12]
}

// Dedupe returns records with repeated payloads removed, keeping the
// first occurrence of each, and the number removed. Kind and method
// are part of the identity: the same bytes checked as an event and as
// a message are two checks.
func Dedupe(records []Record) ([]Record, int) {
	type key struct {
		kind        Kind
		method      string
		fingerprint Fingerprint
	}
	seen := make(map[key]struct{}, len(records))
	kept := make([]Record, 0, len(records))
	for _, record := range records {
		k := key{record.Kind, record.Method, FingerprintPayload(record.Payload)}
		if _, duplicate := seen[k]; duplicate {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, record)
	}
	return kept, len(records) - len(kept)
}
