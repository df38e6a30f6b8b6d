package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

// AllowedExtensions are the document types the extraction pipeline reads.
var AllowedExtensions = []string{".pdf", ".docx", ".txt"}

// ErrUnsupportedType is returned before any request for files whose extension
// is not in AllowedExtensions.
var ErrUnsupportedType = fmt.Errorf("unsupported file type, use one of %s", strings.Join(AllowedExtensions, ", "))

func Allowed(filename string) bool {
	return slices.Contains(AllowedExtensions, strings.ToLower(filepath.Ext(filename)))
}

// Extraction is the candidate contract read from a document.
type Extraction struct {
	Contract    contract.Extracted
	TextPreview string
}

// Extractor posts documents as multipart field "file" to a fixed URL. The
// client uses the backend's /contracts/upload; the backend uses the
// extraction service directly.
type Extractor struct {
	client *Client
	url    string
}

func (c *Client) Extractor() *Extractor {
	return &Extractor{client: c, url: c.url("/contracts/upload")}
}

// NewExtractor targets an absolute URL.
func NewExtractor(url string, client *Client) *Extractor {
	return &Extractor{client: client, url: url}
}

func (e *Extractor) Extract(ctx context.Context, filename string, r io.Reader) (*Extraction, error) {
	if !Allowed(filename) {
		return nil, ErrUnsupportedType
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(filename))
		if err != nil {
			pw.CloseWithError(err)
			return
		}

		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}

		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out ExtractionJSON
	if err := e.client.do(req, &out); err != nil {
		pr.Close()
		return nil, err
	}

	return &Extraction{
		Contract:    out.Extracted.Extracted(),
		TextPreview: out.TextPreview,
	}, nil
}
