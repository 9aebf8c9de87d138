package ingestion

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pdfBytes = []byte("%PDF-1.7\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF")
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	zipBytes = []byte("PK\x03\x04\x14\x00\x00\x00\x08\x00")
)

func TestEncode_PDF(t *testing.T) {
	payload, err := Encode(FileInput{Name: "cv.pdf", MIMEType: "application/pdf", Data: pdfBytes}, Limits{})
	require.NoError(t, err)

	assert.Equal(t, "cv.pdf", payload.Name)
	assert.Equal(t, MIMEPDF, payload.MIMEType)
	assert.Equal(t, int64(len(pdfBytes)), payload.Size)
	assert.Len(t, payload.Hash, 64)

	decoded, err := base64.StdEncoding.DecodeString(payload.Data)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, decoded)
}

func TestEncode_Image(t *testing.T) {
	for _, mimeType := range []string{"image/png", "image/jpeg", "image/webp", "IMAGE/PNG"} {
		t.Run(mimeType, func(t *testing.T) {
			_, err := Encode(FileInput{Name: "scan", MIMEType: mimeType, Data: pngBytes}, Limits{})
			assert.NoError(t, err)
		})
	}
}

func TestEncode_RejectsUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		input FileInput
	}{
		{name: "zip", input: FileInput{Name: "cv.zip", MIMEType: "application/zip", Data: zipBytes}},
		{name: "word", input: FileInput{Name: "cv.docx", MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", Data: zipBytes}},
		{name: "text", input: FileInput{Name: "cv.txt", MIMEType: "text/plain", Data: []byte("Jane Doe")}},
		{name: "sniffed zip", input: FileInput{Name: "cv", Data: zipBytes}},
		{name: "empty", input: FileInput{Name: "empty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encode(tt.input, Limits{})
			assert.Nil(t, payload)

			var formatErr *UnsupportedFormatError
			require.True(t, errors.As(err, &formatErr), "got %v", err)
			assert.Equal(t, tt.input.Name, formatErr.Name)
		})
	}
}

func TestResolveMIMEType(t *testing.T) {
	assert.Equal(t, "application/pdf", ResolveMIMEType(FileInput{MIMEType: "application/octet-stream", Data: pdfBytes}))
	assert.Equal(t, "image/png", ResolveMIMEType(FileInput{Data: pngBytes}))
	assert.Equal(t, "image/jpeg", ResolveMIMEType(FileInput{MIMEType: "image/jpeg; charset=binary", Data: pngBytes}))
}

func TestEncode_SizeLimit(t *testing.T) {
	in := FileInput{Name: "cv.pdf", MIMEType: MIMEPDF, Data: pdfBytes}

	_, err := Encode(in, Limits{MaxBytes: 10})
	var tooLarge *PayloadTooLargeError
	require.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, int64(10), tooLarge.Limit)

	_, err = Encode(in, Limits{MaxBytes: int64(len(pdfBytes))})
	assert.NoError(t, err, "limit is inclusive")

	_, err = Encode(in, Limits{})
	assert.NoError(t, err, "zero limit means unbounded")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, pdfBytes, 0644))

	in, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", in.Name)
	assert.Equal(t, MIMEPDF, in.MIMEType)
	assert.Equal(t, pdfBytes, in.Data)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.pdf"))

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
