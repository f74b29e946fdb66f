// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "github.com/slackwire/slackwire/lib/union"

// decodeRecord decodes a product type through lib/union so nested
// records get the same required-field checks and error classification
// as union variants. Callers pass a method-less copy of their own type
// as V to avoid recursing into their UnmarshalJSON.
func decodeRecord[V any](data []byte, strict bool) (V, error) {
	if strict {
		return union.DecodeStrict[V](data)
	}
	return union.DecodeLenient[V](data)
}
