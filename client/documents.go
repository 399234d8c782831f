package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
)

// Upload submits a document for processing and returns its server record.
// The whole payload is buffered so transport retries can replay it.
func (c *Client) Upload(ctx context.Context, r io.Reader, opts UploadOptions) (*Document, error) {
	if opts.Filename == "" {
		return nil, fmt.Errorf("upload filename is required")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", opts.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if opts.PageCount > 0 {
		if err := mw.WriteField("page_count", strconv.Itoa(opts.PageCount)); err != nil {
			return nil, fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, "/documents", mw.FormDataContentType(), body.Bytes())
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(respBody, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &doc, nil
}

// UploadFile uploads a document from disk. PDF inputs get a local page count
// hint when opts.PageCount is unset; callers that already know the count can
// pre-fill it (see internal/pdfinfo).
func (c *Client) UploadFile(ctx context.Context, path string, opts UploadOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	if opts.Filename == "" {
		opts.Filename = filepath.Base(path)
	}
	return c.Upload(ctx, f, opts)
}

// GetDocument fetches the current record for a document.
func (c *Client) GetDocument(ctx context.Context, docID string) (*Document, error) {
	var doc Document
	if err := c.doJSON(ctx, http.MethodGet, "/documents/"+url.PathEscape(docID), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListDocuments returns all documents owned by the caller.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	var resp struct {
		Documents []Document `json:"documents"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/documents", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// DeleteDocument removes a document and its derived data.
func (c *Client) DeleteDocument(ctx context.Context, docID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/documents/"+url.PathEscape(docID), nil, nil)
}

// WaitForCompletion polls a document until processing reaches a terminal
// status or the context expires. A document that ends up failed returns an
// error carrying the server-reported reason.
func (c *Client) WaitForCompletion(ctx context.Context, docID string, pollInterval time.Duration) (*Document, error) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	var doc *Document
	err := retry.Do(
		func() error {
			var err error
			doc, err = c.GetDocument(ctx, docID)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if !doc.Status.Terminal() {
				return fmt.Errorf("document %s still %s", docID, doc.Status)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(0), // until ctx cancellation
		retry.Delay(pollInterval),
		retry.DelayType(retry.FixedDelay),
	)
	if err != nil {
		return nil, err
	}

	if doc.Status == StatusFailed {
		return doc, fmt.Errorf("document %s failed: %s", docID, doc.Error)
	}
	return doc, nil
}

// OCRResult fetches per-page OCR markdown for a completed document.
func (c *Client) OCRResult(ctx context.Context, docID string) (*OCRResult, error) {
	var result OCRResult
	if err := c.doJSON(ctx, http.MethodGet, "/documents/"+url.PathEscape(docID)+"/ocr", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
