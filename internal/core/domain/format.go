package domain

import "strings"

// Format is the creative format of an ad slot.
type Format string

const (
	FormatBanner Format = "banner"
	FormatNative Format = "native"
	FormatVideo  Format = "video"
)

// Formats lists every format the core can serve.
var Formats = []Format{FormatBanner, FormatNative, FormatVideo}

// ParseFormat normalises s and returns a ValidationError for anything that
// is not a known format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatBanner, FormatNative, FormatVideo:
		return f, nil
	default:
		return "", &ValidationError{Field: "format", Message: "must be one of banner, native, video"}
	}
}
