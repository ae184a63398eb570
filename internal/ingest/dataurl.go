package ingest

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var errNotDataURL = errors.New("not a base64 data URL")

// EncodeDataURL renders binary content as a self-describing data: URL,
// embedding the MIME type so the string alone can reconstruct the resource.
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL is the inverse of EncodeDataURL. It returns the embedded
// MIME type and the decoded content.
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, errNotDataURL
	}
	mimeType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, errNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid data URL payload: %w", err)
	}
	return mimeType, data, nil
}
