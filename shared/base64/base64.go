package base64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const dataPrefix = "data:"
const base64Marker = ";base64,"

var ErrInvalidDataURL = errors.New("invalid base64 data url")

// GetContentType returns the media type of a data URL such as data:image/png;base64,....
func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

func payload(file string) (string, bool) {
	idx := strings.Index(file, base64Marker)
	if idx == -1 || !strings.HasPrefix(file, dataPrefix) {
		return "", false
	}

	return file[idx+len(base64Marker):], true
}

// DecodedLen approximates the byte length of the payload without decoding it.
func DecodedLen(file string) int {
	data, ok := payload(file)
	if !ok {
		return 0
	}

	return base64.StdEncoding.DecodedLen(len(data)) - strings.Count(data[max(len(data)-2, 0):], "=")
}

// Decode splits a data URL into its content type and raw bytes.
func Decode(file string) (string, []byte, error) {
	contentType := GetContentType(file)

	data, ok := payload(file)
	if !ok || contentType == "" {
		return "", nil, ErrInvalidDataURL
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	return contentType, raw, nil
}
