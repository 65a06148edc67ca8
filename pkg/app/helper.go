package app

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"mime"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

// BindMultipartFile streams the part named key without buffering the whole
// form in memory.
func BindMultipartFile(c echo.Context, key string) (io.Reader, string, error) {
	reader, err := c.Request().MultipartReader()
	if err != nil {
		return nil, "", fmt.Errorf("parsing multipart form: %w", err)
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			return nil, "", fmt.Errorf("reading multipart form: %w", err)
		}

		if part.FormName() != key {
			continue
		}

		return DetectContentType(bufio.NewReader(part))
	}
}

// DetectContentType returns a new reader containing the whole data from
// input together with its MIME type.
func DetectContentType(input io.Reader) (io.Reader, string, error) {
	// header will store the bytes mimetype uses for detection.
	header := bytes.NewBuffer(nil)

	mtype, err := mimetype.DetectReader(io.TeeReader(input, header))
	if err != nil {
		return nil, "", err
	}

	// recycled now contains the complete, original data.
	recycled := io.MultiReader(header, input)

	return recycled, mtype.String(), nil
}

// IsText reports whether contentType is text/plain or one of its subtypes
// such as text/csv.
func IsText(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for m := mimetype.Lookup(mediaType); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}

	return false
}
