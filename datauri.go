package markify

import (
	"encoding/base64"
	"strings"
	"unicode"
)

const dataURIPrefix = "data:"

// IsDataURI reports whether src is an inline data URI.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, dataURIPrefix)
}

// TruncateDataURI drops the payload of a data URI, keeping everything up to
// the first comma followed by "...".
func TruncateDataURI(src string) string {
	head, _, _ := strings.Cut(src, ",")
	return head + "..."
}

// DataURIExtension returns the file extension for a data URI, taken from the
// subtype of its declared media type. URIs without a ';' separated media type
// segment, or with an empty one, get "png".
func DataURIExtension(src string) string {
	header, _, _ := strings.Cut(src, ",")
	mediaType, _, ok := strings.Cut(strings.TrimPrefix(header, dataURIPrefix), ";")
	if !ok {
		return "png"
	}
	_, subtype, _ := strings.Cut(mediaType, "/")
	if subtype == "" {
		return "png"
	}
	return subtype
}

// DecodeDataURI decodes the base64 payload that follows the first comma.
func DecodeDataURI(src string) ([]byte, error) {
	_, payload, ok := strings.Cut(src, ",")
	if !ok {
		return nil, Errorf(EINVALID, "data URI has no payload")
	}
	payload, _, _ = strings.Cut(payload, ",")
	payload = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, payload)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid base64 payload: %v", err)
	}
	return data, nil
}
