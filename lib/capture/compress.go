// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how a capture file is compressed. It is
// chosen by file extension.
type Compression uint8

const (
	CompressionNone Compression = iota
	// CompressionZstd is a zstd frame (".zst"). Recorded payloads are
	// JSON and compress well, so this is what long captures use.
	CompressionZstd
	// CompressionLZ4 is an LZ4 frame (".lz4").
	CompressionLZ4
)

// maxDecompressedSize bounds a decompressed capture file.
const maxDecompressedSize = 256 << 20

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// CompressionFor returns the compression implied by path's extension
// and the path with that extension removed.
func CompressionFor(path string) (Compression, string) {
	switch ext := filepath.Ext(path); ext {
	case ".zst":
		return CompressionZstd, strings.TrimSuffix(path, ext)
	case ".lz4":
		return CompressionLZ4, strings.TrimSuffix(path, ext)
	default:
		return CompressionNone, path
	}
}

// zstdEncoder and zstdDecoder are safe for concurrent use and reused
// across calls.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("capture: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecompressedSize))
	if err != nil {
		panic("capture: zstd decoder initialization failed: " + err.Error())
	}
}

func compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		return zstdEncoder.EncodeAll(data, nil), nil

	case CompressionLZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported compression: %s", compression)
	}
}

func decompress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		decompressed, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return decompressed, nil

	case CompressionLZ4:
		reader := io.LimitReader(lz4.NewReader(bytes.NewReader(data)), maxDecompressedSize+1)
		decompressed, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if len(decompressed) > maxDecompressedSize {
			return nil, fmt.Errorf("lz4 decompress: output exceeds %d bytes", maxDecompressedSize)
		}
		return decompressed, nil

	default:
		return nil, fmt.Errorf("unsupported compression: %s", compression)
	}
}
