// Package fileio reads and writes whole document files. Loading
// normalizes Unicode BOM encodings to UTF-8 and splits content into
// lines with line endings stripped; saving writes the serialized
// document with exact-length truncation.
package fileio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
)

const binarySniffSampleSize = 4096

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// Load reads path and returns its lines with trailing \r and \n
// stripped. UTF-8 BOM and UTF-16 content is converted to UTF-8 first.
// The bool result reports whether the content looks binary, so callers
// can warn before edits mangle the file.
func Load(path string) ([][]byte, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	binary := LooksBinary(content)
	lines := SplitLines(NormalizeContent(content))
	log.Debug().Str("path", path).Int("lines", len(lines)).Bool("binary", binary).Msg("loaded file")
	return lines, binary, nil
}

// Save writes data to path, creating the file if absent and truncating
// it to exactly len(data). It returns the number of bytes written.
func Save(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("save: open failed")
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.Truncate(int64(len(data))); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("save: truncate failed")
		return 0, fmt.Errorf("truncate %s: %w", path, err)
	}
	n, err := f.Write(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Int("written", n).Msg("save: write failed")
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", n).Msg("saved file")
	return n, nil
}

// SplitLines breaks content into lines, stripping the trailing \n and
// any \r before it. A trailing newline does not produce an empty last
// line.
func SplitLines(content []byte) [][]byte {
	if len(content) == 0 {
		return nil
	}
	raw := bytes.Split(content, []byte("\n"))
	if len(raw) > 0 && len(raw[len(raw)-1]) == 0 {
		raw = raw[:len(raw)-1]
	}
	lines := make([][]byte, len(raw))
	for i, line := range raw {
		line = bytes.TrimSuffix(line, []byte("\r"))
		lines[i] = append([]byte(nil), line...)
	}
	return lines
}

// LooksBinary reports whether content appears to be binary data rather
// than editable text.
func LooksBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	sample := content
	if len(sample) > binarySniffSampleSize {
		sample = sample[:binarySniffSampleSize]
	}
	if detectUnicodeEncoding(sample) != encodingUnknown {
		return false
	}
	return bytes.IndexByte(sample, 0x00) != -1
}

// NormalizeContent converts known Unicode BOM-encoded content into UTF-8.
func NormalizeContent(content []byte) []byte {
	if len(content) == 0 {
		return content
	}
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		return content[3:]
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return content
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) []byte {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return content
	}
	return out
}
