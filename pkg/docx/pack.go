package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"time"
)

// ContentType is the MIME type of a packed document.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var (
	ErrNilDocument        = errors.New("document is nil")
	ErrUnsupportedImage   = errors.New("unsupported image format")
	ErrInvalidImageBounds = errors.New("image dimensions must be positive")
)

// zipEpoch pins every entry's modification time so output is reproducible.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name string
	data []byte
}

// Pack serializes d into a .docx archive.
func Pack(d *Document) ([]byte, error) {
	if d == nil {
		return nil, ErrNilDocument
	}
	if err := validateImages(d); err != nil {
		return nil, err
	}

	body, media, err := renderBody(d)
	if err != nil {
		return nil, err
	}

	parts := []part{
		{"[Content_Types].xml", contentTypesXML(media)},
		{"_rels/.rels", rootRelsXML()},
		{"docProps/core.xml", corePropsXML(d)},
		{"docProps/app.xml", appPropsXML()},
		{"word/document.xml", body},
		{"word/styles.xml", stylesXML(d)},
		{"word/numbering.xml", numberingXML()},
		{"word/_rels/document.xml.rels", documentRelsXML(media)},
	}
	for _, m := range media {
		parts = append(parts, part{"word/media/" + m.name, m.data})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return nil, fmt.Errorf("write part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func validateImages(d *Document) error {
	check := func(img *Image) error {
		if img == nil {
			return nil
		}
		if _, ok := imageContentTypes[img.Format]; !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedImage, img.Format)
		}
		if img.Width <= 0 || img.Height <= 0 {
			return ErrInvalidImageBounds
		}
		return nil
	}
	for _, b := range d.Body {
		switch v := b.(type) {
		case Paragraph:
			if err := check(v.Image); err != nil {
				return err
			}
		case Table:
			for _, r := range v.Rows {
				for _, c := range r.Cells {
					for _, p := range c.Paragraphs {
						if err := check(p.Image); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}
