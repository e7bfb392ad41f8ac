// Package media turns user-selected local files into embeddable attachments.
// The file is read once, its MIME type sniffed, and the bytes encoded as a
// data URI so posts need no server-side storage.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tradepulse/internal/domain"
)

// ErrUnsupportedMedia is returned for files that are neither image nor video.
var ErrUnsupportedMedia = errors.New("media: unsupported attachment type")

// Attachment is an ingested local file: the embeddable representation for a
// post plus the raw bytes for the AI collaborator.
type Attachment struct {
	Media domain.Media
	Data  []byte
	MIME  string
}

// ReadAttachment reads the file at path and produces an attachment. The read
// is synchronous; no concurrent attachment reads are supported per draft.
func ReadAttachment(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("media: reading attachment: %w", err)
	}

	mimeType := sniffMIME(path, data)
	var kind domain.MediaKind
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		kind = domain.MediaImage
	case strings.HasPrefix(mimeType, "video/"):
		kind = domain.MediaVideo
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, mimeType)
	}

	return &Attachment{
		Media: domain.Media{
			URL:  DataURI(mimeType, data),
			Kind: kind,
		},
		Data: data,
		MIME: mimeType,
	}, nil
}

// DataURI encodes data as a base64 data URI with the given MIME type.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// sniffMIME detects the content type from the file bytes, falling back to
// the file extension when sniffing is inconclusive.
func sniffMIME(path string, data []byte) string {
	sniffed := http.DetectContentType(data)
	if sniffed != "application/octet-stream" && sniffed != "text/plain; charset=utf-8" {
		return sniffed
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}
	return sniffed
}
