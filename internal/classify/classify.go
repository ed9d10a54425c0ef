// Package classify maps display filenames to coarse content categories.
// Classification is a pure function of the (case-insensitive) extension;
// it performs no I/O and never fails.
package classify

import (
	"path/filepath"
	"strings"
)

// Category is a coarse content-type classification.
type Category string

const (
	Image    Category = "image"
	Video    Category = "video"
	Audio    Category = "audio"
	Text     Category = "text"
	Code     Category = "code"
	PDF      Category = "pdf"
	Archive  Category = "archive"
	Document Category = "document"
	Unknown  Category = "unknown"
)

var byExtension = map[string]Category{
	"jpg": Image, "jpeg": Image, "png": Image, "gif": Image,
	"webp": Image, "svg": Image, "bmp": Image, "ico": Image,

	"mp4": Video, "webm": Video, "mov": Video, "avi": Video,
	"mkv": Video, "m4v": Video,

	"mp3": Audio, "wav": Audio, "m4a": Audio, "aac": Audio,
	"flac": Audio, "ogg": Audio,

	"txt": Text, "md": Text, "json": Text, "xml": Text, "csv": Text,
	"log": Text, "yml": Text, "yaml": Text, "toml": Text, "ini": Text,

	"js": Code, "ts": Code, "html": Code, "css": Code, "rs": Code,
	"py": Code, "java": Code, "c": Code, "cpp": Code, "h": Code,
	"hpp": Code, "go": Code, "rb": Code, "php": Code, "sh": Code,
	"bash": Code,

	"pdf": PDF,

	"zip": Archive, "rar": Archive, "7z": Archive, "tar": Archive,
	"gz": Archive, "bz2": Archive,

	"doc": Document, "docx": Document, "xls": Document, "xlsx": Document,
	"ppt": Document, "pptx": Document,
}

// ByName classifies a display filename and reports whether the category
// supports preview. Missing or unrecognized extensions yield Unknown/false.
func ByName(name string) (Category, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	cat, ok := byExtension[ext]
	if !ok {
		return Unknown, false
	}
	return cat, cat.Previewable()
}

// Previewable reports whether files of this category may be previewed.
// Archives, office documents and unknown content are excluded.
func (c Category) Previewable() bool {
	switch c {
	case Archive, Document, Unknown:
		return false
	default:
		return true
	}
}

// TextLike reports whether the category is served by the text preview
// reader (only text and code content is rendered as text).
func (c Category) TextLike() bool {
	return c == Text || c == Code
}
