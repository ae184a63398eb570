// Package ingest validates selected files against the vault's size and type
// policy and converts their binary content into the text form the store
// keeps.
package ingest

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvkeep/mediavault/internal/common"
	"github.com/mvkeep/mediavault/internal/vault"
)

// MaxFileSize is the default per-file limit.
const MaxFileSize = 5 * 1024 * 1024

// The stdlib table knows the common image extensions but few video ones, and
// the system mime.types file is not guaranteed to exist. Register what the
// two upload channels are expected to meet.
func init() {
	for ext, typ := range map[string]string{
		".mp4":  "video/mp4",
		".m4v":  "video/mp4",
		".mov":  "video/quicktime",
		".avi":  "video/x-msvideo",
		".mkv":  "video/x-matroska",
		".webm": "video/webm",
		".heic": "image/heic",
	} {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// Kind is the upload channel a file arrived through.
type Kind int

const (
	Image Kind = iota
	Video
)

// Prefix is the MIME prefix records of this kind must carry.
func (k Kind) Prefix() string {
	if k == Video {
		return "video/"
	}
	return "image/"
}

func (k Kind) String() string {
	if k == Video {
		return "video"
	}
	return "image"
}

// Source is one selected file. Open defers reading until the file has passed
// the cheap checks.
type Source struct {
	Name string
	Size int64
	MIME string
	Open func() ([]byte, error)
}

// FromPath stats the file and detects its MIME type, preferring the
// extension and falling back to content sniffing for files without one.
func FromPath(path string) (Source, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %w", common.ErrReadFailure, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = sniffMIME(path)
	}

	return Source{
		Name: filepath.Base(path),
		Size: fi.Size(),
		MIME: mimeType,
		Open: func() ([]byte, error) { return os.ReadFile(path) },
	}, nil
}

// sniffMIME reads the first 512 bytes, which is all DetectContentType looks at.
func sniffMIME(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return ""
	}
	return http.DetectContentType(buf[:n])
}

// Pipeline applies the ingestion policy. The zero value is not usable; use
// NewPipeline.
type Pipeline struct {
	maxSize int64
}

// NewPipeline returns a pipeline with the given per-file size limit.
// A non-positive limit falls back to MaxFileSize.
func NewPipeline(maxSize int64) *Pipeline {
	if maxSize <= 0 {
		maxSize = MaxFileSize
	}
	return &Pipeline{maxSize: maxSize}
}

// Ingest checks src against the policy, in order, first failure wins:
// size limit (common.ErrTooLarge), MIME prefix for kind (common.ErrWrongType),
// then read and encode (common.ErrReadFailure). On success the returned
// record is ready for insertion into a media collection.
func (p *Pipeline) Ingest(ctx context.Context, src Source, kind Kind) (vault.Media, error) {
	if err := ctx.Err(); err != nil {
		return vault.Media{}, err
	}

	if src.Size > p.maxSize {
		return vault.Media{}, fmt.Errorf("%w: %q exceeds %d bytes", common.ErrTooLarge, src.Name, p.maxSize)
	}
	if !strings.HasPrefix(src.MIME, kind.Prefix()) {
		return vault.Media{}, fmt.Errorf("%w: %q on the %s channel", common.ErrWrongType, src.Name, kind)
	}

	data, err := src.Open()
	if err != nil {
		return vault.Media{}, fmt.Errorf("%w: %q: %w", common.ErrReadFailure, src.Name, err)
	}

	return vault.Media{
		Name: src.Name,
		Type: src.MIME,
		Data: EncodeDataURL(src.MIME, data),
	}, nil
}
