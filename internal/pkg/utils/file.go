package utils

import (
	"bytes"
	"io"
	"net/http"
)

// SniffContentType detects the content type from the first bytes of file.
// The returned reader yields the whole content, sniffed bytes included.
func SniffContentType(file io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]
	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), file), nil
}

// IsAllowedContentType reports whether contentType is one of allowed.
func IsAllowedContentType(contentType string, allowed []string) bool {
	for _, candidate := range allowed {
		if contentType == candidate {
			return true
		}
	}
	return false
}
