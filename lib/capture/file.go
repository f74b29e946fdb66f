// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/slackwire/slackwire/lib/union"
)

// Parse reads a capture document. Comments and trailing commas are
// allowed; keys other than "description" and "records" are not.
func Parse(data []byte) ([]Record, error) {
	doc, err := union.DecodeStrict[document](jsonc.ToJSON(data))
	if err != nil {
		return nil, err
	}
	var errs []error
	for i, record := range doc.Records {
		if err := record.validate(); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return doc.Records, nil
}

// Load reads the capture file at path, decompressing by extension,
// and stamps each record's Source.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	compression, _ := CompressionFor(path)
	data, err = decompress(data, compression)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	name := filepath.Base(path)
	for i := range records {
		records[i].Source = fmt.Sprintf("%s#%d", name, i)
	}
	return records, nil
}

// LoadAll loads every path in order and concatenates the records.
func LoadAll(paths []string) ([]Record, error) {
	var all []Record
	for _, path := range paths {
		records, err := Load(path)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// Find lists the capture files directly inside directory, sorted by
// name. A capture file is one whose name, after any .zst or .lz4
// suffix, ends in .json or .jsonc.
func Find(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		_, base := CompressionFor(entry.Name())
		if strings.HasSuffix(base, ".json") || strings.HasSuffix(base, ".jsonc") {
			paths = append(paths, filepath.Join(directory, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Save writes records to path as an indented capture document,
// compressed according to the extension.
func Save(path, description string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(document{Description: description, Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding capture: %w", err)
	}
	compression, _ := CompressionFor(path)
	data, err = compress(append(data, '\n'), compression)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
