// Package encoding turns plain-text uploads into UTF-8. Lease documents
// written on older office machines are often Latin-1 or Windows-1252.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

var charsets = map[string]xencoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-15":  charmap.ISO8859_15,
	"ISO-8859-9":   charmap.ISO8859_9,
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// detect picks the decoder for a sniffed prefix. A nil encoding means the
// bytes are already UTF-8; skip is the length of a UTF-8 BOM to drop.
func detect(buf []byte) (enc xencoding.Encoding, skip int) {
	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		return nil, len(bomUTF8)
	case bytes.HasPrefix(buf, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), 0
	case bytes.HasPrefix(buf, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), 0
	}

	if utf8.Valid(buf) {
		return nil, 0
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if result.Charset == "UTF-8" {
			return nil, 0
		}

		if enc, ok := charsets[result.Charset]; ok {
			return enc, 0
		}
	}

	return charmap.Windows1252, 0
}

// NewUTF8Reader sniffs the start of r and returns a reader that yields UTF-8.
// Detection order: BOM, UTF-8 validity, chardet, then Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	buf, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	enc, skip := detect(buf)
	if skip > 0 {
		_, _ = br.Discard(skip)
	}

	if enc == nil {
		return br, nil
	}

	return transform.NewReader(br, enc.NewDecoder()), nil
}

// DecodeString is NewUTF8Reader for content already in memory.
func DecodeString(data []byte) (string, error) {
	r, err := NewUTF8Reader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}

	return string(out), nil
}
