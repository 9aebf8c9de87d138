package export

import (
	"github.com/jonathan/cv-tailor/internal/clipboard"
	"github.com/jonathan/cv-tailor/internal/types"
)

// ClipboardMode reports which representations reached the clipboard
type ClipboardMode string

const (
	// ModeRich means both plain text and rendered HTML were written
	ModeRich ClipboardMode = "rich"
	// ModePlain means only plain text was written
	ModePlain ClipboardMode = "plain"
)

// ToClipboard copies the buffer to w. Writers that accept several representations
// receive plain text and rendered HTML together; others receive plain text only.
func ToClipboard(w clipboard.Writer, buf types.Buffer) (ClipboardMode, error) {
	rich, ok := w.(clipboard.RichWriter)
	if !ok {
		if err := w.WriteText(buf.Content); err != nil {
			return "", err
		}
		return ModePlain, nil
	}

	body, err := RenderHTML(buf.Content)
	if err != nil {
		return "", err
	}
	if err := rich.WriteRich(buf.Content, body); err != nil {
		return "", err
	}
	return ModeRich, nil
}
