package renderer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"regexp"
	"strings"

	"github.com/khoahotran/resume-studio/pkg/docx"
)

// profileImageEdge is the square footprint of the profile picture in pixels.
const profileImageEdge = 100

var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

var imageFormats = map[string]docx.ImageFormat{
	"png":  docx.ImagePNG,
	"jpeg": docx.ImageJPEG,
	"gif":  docx.ImageGIF,
}

func decodeProfileImage(payload string) (*docx.Image, error) {
	raw := dataURIPrefix.ReplaceAllString(strings.TrimSpace(payload), "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrInvalidImage, err)
	}
	// A full decode catches truncated pixel data that a valid header hides.
	_, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	format, ok := imageFormats[name]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidImage, name)
	}
	return &docx.Image{Data: data, Format: format, Width: profileImageEdge, Height: profileImageEdge}, nil
}
