// Package media holds the user's selected study source: either a local
// audio/video file or a remote video reference picked from search results.
package media

import (
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxFileSize is the ceiling for local media files.
const MaxFileSize = 20 << 20 // 20 MB

var (
	// ErrInvalidType rejects files whose media type is not audio or video.
	ErrInvalidType = errors.New("file is not an audio or video type")

	// ErrTooLarge rejects files exceeding MaxFileSize.
	ErrTooLarge = errors.New("file exceeds the 20 MB size limit")

	// ErrInvalidRef rejects structurally incomplete video references.
	ErrInvalidRef = errors.New("invalid video reference")
)

// IsValidationError reports whether err is a media validation failure.
// Validation errors are reported inline at the point of input and never
// escalate the session.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidType) || errors.Is(err, ErrTooLarge) || errors.Is(err, ErrInvalidRef)
}

// Media is the selected study source: a local file or a video reference.
// Immutable once chosen; replaced wholesale on reset.
type Media interface {
	// Label is a short human-readable description of the source.
	Label() string

	isMedia()
}

// File is a validated local audio/video file with its contents loaded.
type File struct {
	Path     string
	MIMEType string
	Size     int64
	Data     []byte
}

func (File) isMedia() {}

func (f File) Label() string {
	return filepath.Base(f.Path)
}

// Video is a reference to a remote video, not owned media.
type Video struct {
	ID      string `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Channel string `json:"channel" validate:"required"`
}

func (Video) isMedia() {}

func (v Video) Label() string {
	return v.Title
}

// WatchURL builds the playback URL for the referenced video.
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(v.ID)
}

var validate = validator.New()

// mimeByExt maps common audio/video extensions to their MIME types.
// The stdlib table omits most media extensions on minimal systems, so
// the selector carries its own and falls back to the system table only
// for anything unlisted.
var mimeByExt = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
}

func typeByExtension(ext string) string {
	if t, ok := mimeByExt[strings.ToLower(ext)]; ok {
		return t
	}
	return mime.TypeByExtension(ext)
}

// SelectFile validates and loads a local media file. Only audio/video
// MIME types up to MaxFileSize are accepted; rejected files produce a
// validation error and no state change.
func SelectFile(path string) (File, error) {
	mimeType := typeByExtension(filepath.Ext(path))
	if base, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = base
	}
	if !strings.HasPrefix(mimeType, "audio/") && !strings.HasPrefix(mimeType, "video/") {
		return File{}, fmt.Errorf("%w: %q", ErrInvalidType, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("reading file info: %w", err)
	}
	if info.Size() > MaxFileSize {
		return File{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading file: %w", err)
	}

	return File{
		Path:     path,
		MIMEType: mimeType,
		Size:     info.Size(),
		Data:     data,
	}, nil
}

// SelectVideo accepts a search-selected video reference. The reference
// came from a trusted search result, so only structural shape is checked.
func SelectVideo(ref Video) (Video, error) {
	if err := validate.Struct(ref); err != nil {
		return Video{}, fmt.Errorf("%w: %v", ErrInvalidRef, err)
	}
	return ref, nil
}
