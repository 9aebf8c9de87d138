// Package ingestion converts uploaded résumé files and pasted text into payloads
// for the generation service.
package ingestion

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MIMEPDF is the only non-image type accepted for import
const MIMEPDF = "application/pdf"

// FileInput is a file picked by the user
type FileInput struct {
	Name     string
	MIMEType string // declared type; sniffed from Data when empty or generic
	Data     []byte
}

// Limits bounds what Encode accepts. Zero values mean unbounded.
type Limits struct {
	MaxBytes int64
}

// Payload is an encoded file ready for transmission
type Payload struct {
	Name     string
	MIMEType string
	Data     string // standard base64
	Size     int64  // decoded size in bytes
	Hash     string // SHA-256 hex digest of the raw bytes
}

// genericTypes are declared types that say nothing about the content
var genericTypes = map[string]bool{
	"":                         true,
	"application/octet-stream": true,
	"binary/octet-stream":      true,
}

// Encode validates the file's MIME class and size, then base64-encodes it.
// Unsupported types are rejected before any encoding work.
func Encode(in FileInput, limits Limits) (*Payload, error) {
	mimeType := ResolveMIMEType(in)
	if !Supported(mimeType) {
		return nil, &UnsupportedFormatError{Name: in.Name, MIMEType: mimeType}
	}

	size := int64(len(in.Data))
	if limits.MaxBytes > 0 && size > limits.MaxBytes {
		return nil, &PayloadTooLargeError{Name: in.Name, Size: size, Limit: limits.MaxBytes}
	}

	return &Payload{
		Name:     in.Name,
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(in.Data),
		Size:     size,
		Hash:     computeHash(in.Data),
	}, nil
}

// ResolveMIMEType returns the declared media type without parameters, or the sniffed
// type when the declaration is missing or generic.
func ResolveMIMEType(in FileInput) string {
	declared := strings.ToLower(strings.TrimSpace(in.MIMEType))
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		declared = mediaType
	}
	if !genericTypes[declared] {
		return declared
	}
	if len(in.Data) == 0 {
		return declared
	}
	detected := mimetype.Detect(in.Data).String()
	if mediaType, _, err := mime.ParseMediaType(detected); err == nil {
		return mediaType
	}
	return detected
}

// Supported reports whether a media type is a PDF or an image
func Supported(mimeType string) bool {
	return mimeType == MIMEPDF || strings.HasPrefix(mimeType, "image/")
}

// ReadFile loads a file from disk, declaring its type from the extension.
func ReadFile(path string) (FileInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileInput{}, &ReadError{Path: path, Cause: err}
	}
	return FileInput{
		Name:     filepath.Base(path),
		MIMEType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Data:     data,
	}, nil
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
