package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseDataURI decodes data:<mime>;base64,<payload>. Only base64 payloads are accepted.
func ParseDataURI(uri string) (*InlineImage, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return nil, fmt.Errorf("%w: image must be a data URI", ErrInvalidInput)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: malformed data URI", ErrInvalidInput)
	}
	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, fmt.Errorf("%w: data URI must use base64 encoding", ErrInvalidInput)
	}
	if mimeType == "" {
		return nil, fmt.Errorf("%w: data URI must include a MIME type", ErrInvalidInput)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: data URI payload is not valid base64", ErrInvalidInput)
	}
	return &InlineImage{MIMEType: strings.ToLower(mimeType), Data: data}, nil
}

func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
