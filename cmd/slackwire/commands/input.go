// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"
)

// readInput resolves input data from either a file (the last element
// of args, if it names a regular file on disk) or stdin.
//
// When allowComments is true, JSONC comments and trailing commas are
// stripped before the data is returned.
//
// Returns the input bytes and the args with any consumed file path
// removed.
func readInput(args []string, stdin io.Reader, allowComments bool) ([]byte, []string, error) {
	var data []byte
	remainingArgs := args

	if length := len(args); length > 0 {
		candidate := args[length-1]
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			data, err = os.ReadFile(candidate)
			if err != nil {
				return nil, nil, fmt.Errorf("read %s: %w", candidate, err)
			}
			remainingArgs = args[:length-1]
		}
	}

	if data == nil {
		if stdin == nil {
			return nil, nil, fmt.Errorf("no input file and no stdin")
		}
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	if allowComments {
		data = jsonc.ToJSON(data)
	}

	return data, remainingArgs, nil
}
