// Package textio loads a whole file as text for searching.
package textio

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 is returned for files that are neither valid UTF-8 nor
// BOM-marked UTF-16.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// ReadText reads path fully and decodes it. Errors from opening or reading
// the file are returned as is.
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	s, err := Decode(content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode converts raw file content to a UTF-8 string, stripping a UTF-8 BOM
// and transcoding BOM-marked UTF-16.
func Decode(content []byte) (string, error) {
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		content = content[3:]
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	}
	if !utf8.Valid(content) {
		return "", ErrInvalidUTF8
	}
	return string(content), nil
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

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	if len(content)%2 != 0 {
		return "", fmt.Errorf("utf-16: odd byte count %d", len(content))
	}
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", fmt.Errorf("utf-16: %w", err)
	}
	return string(out), nil
}
