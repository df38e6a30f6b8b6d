package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/MrJamesThe3rd/leasedesk/internal/encoding"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Text returns the plain text of a PDF, DOCX or TXT document.
func Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		return encoding.DecodeString(data)
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filename)
}

func pdfText(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	out, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	return string(out), nil
}

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// docxText joins the paragraphs of word/document.xml with newlines.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}

	f, err := zr.Open("word/document.xml")
	if err != nil {
		return "", fmt.Errorf("opening docx body: %w", err)
	}
	defer f.Close()

	var (
		sb     strings.Builder
		inText bool
	)

	dec := xml.NewDecoder(f)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", fmt.Errorf("parsing docx body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNS {
				continue
			}

			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Space != wordNS {
				continue
			}

			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
