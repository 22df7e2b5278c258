package imageenc

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// Load reads an image file and sniffs its content type from the raw bytes.
// The bytes are returned verbatim, no resizing or format validation.
func Load(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	return data, mimetype.Detect(data).String(), nil
}

func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DataURI builds an inline data URI suitable for embedding the image in a
// multimodal chat request.
func DataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + Encode(data)
}
