// Package docs exports project documents from Google Drive as plain text.
package docs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/roadmap-sync/internal/connectors/google"
	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// Google Workspace MIME types that export to text.
const (
	MimeTypeGoogleDoc    = "application/vnd.google-apps.document"
	MimeTypeGoogleSlides = "application/vnd.google-apps.presentation"
)

// ExportMimeText is the export format for Workspace files.
const ExportMimeText = "text/plain"

// MaxContentSize caps how much of a document is read (5MB).
const MaxContentSize = 5 * 1024 * 1024

// fileFields is the metadata requested for each document.
var fileFields = []googleapi.Field{"id", "name", "mimeType", "webViewLink", "size"}

// Client fetches documents by Drive file ID.
type Client struct {
	svc     *drive.Service
	limiter *google.Throttle
}

// New creates a docs client.
func New(svc *drive.Service) *Client {
	return &Client{
		svc:     svc,
		limiter: google.NewThrottle(google.DriveQuota),
	}
}

// FetchDocument returns the title, text body and browse link of a file.
func (c *Client) FetchDocument(ctx context.Context, fileID string) (domain.RawDocument, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.RawDocument{}, err
	}

	call := c.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx)
	call.Fields(fileFields...)
	file, err := call.Do()
	if err != nil {
		return domain.RawDocument{}, c.wrap("get", fileID, err)
	}

	content, err := c.content(ctx, file)
	if err != nil {
		return domain.RawDocument{}, err
	}

	return domain.RawDocument{
		Title:   file.Name,
		Content: content,
		URL:     file.WebViewLink,
	}, nil
}

func (c *Client) content(ctx context.Context, file *drive.File) (string, error) {
	switch file.MimeType {
	case MimeTypeGoogleDoc, MimeTypeGoogleSlides:
		resp, err := c.svc.Files.Export(file.Id, ExportMimeText).Context(ctx).Download()
		if err != nil {
			return "", c.wrap("export", file.Id, err)
		}
		defer resp.Body.Close()
		return readLimited(resp.Body)
	}

	if !isTextFile(file.MimeType) {
		return "", fmt.Errorf("docs: %s has mime type %q: %w", file.Id, file.MimeType, domain.ErrFetchFailed)
	}

	resp, err := c.svc.Files.Get(file.Id).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return "", c.wrap("download", file.Id, err)
	}
	defer resp.Body.Close()
	return readLimited(resp.Body)
}

func (c *Client) wrap(op, fileID string, err error) error {
	c.limiter.Observe(err)
	return fmt.Errorf("docs: %s %s: %w", op, fileID, google.WrapError(err))
}

func readLimited(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxContentSize))
	if err != nil {
		return "", fmt.Errorf("docs: read content: %w", err)
	}
	return string(data), nil
}

func isTextFile(mimeType string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	switch mimeType {
	case "application/json", "application/xml", "application/x-yaml":
		return true
	}
	return false
}
