package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"bendor/internal/logging"
)

const filenameLen = 12

// Filename names exported bytes by their content: the first 12 hex
// characters of their SHA-256.
func Filename(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:filenameLen]
}

// PNGEncoder is anything that can write itself as PNG.
type PNGEncoder interface {
	EncodePNG(w io.Writer) error
}

// WritePNG encodes img into dir and returns the file's path.
func WritePNG(dir string, img PNGEncoder) (string, error) {
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return write(dir, buf.Bytes(), "png")
}

// WriteGIF encodes frames with enc into dir and returns the file's path.
func WriteGIF(dir string, enc Encoder, frames []*image.RGBA, opts GIFOptions) (string, error) {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, frames, opts); err != nil {
		return "", err
	}
	return write(dir, buf.Bytes(), "gif")
}

func write(dir string, data []byte, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, Filename(data)+"."+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	logging.Logger().Info("export: wrote file", "path", path, "bytes", len(data))
	return path, nil
}
