package ppm

import (
	"bufio"
	"fmt"
	"io"
)

// Reader parses a P6 image from an underlying io.Reader, one pixel at
// a time, mirroring Writer's Open/Store naming as Open/Fetch.
type Reader struct {
	r      *bufio.Reader
	width  int
	height int
	maxval int
	read   int
}

// NewReader wraps r for reading one PPM image.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Open parses the P6 header and returns the image dimensions and
// maxval.
func (rd *Reader) Open() (width, height, maxval int, err error) {
	var magic string
	if _, err := fmt.Fscan(rd.r, &magic); err != nil {
		return 0, 0, 0, fmt.Errorf("ppm: reading magic number: %w", err)
	}
	if magic != "P6" {
		return 0, 0, 0, fmt.Errorf("ppm: unsupported magic number %q, want P6", magic)
	}

	if _, err := fmt.Fscan(rd.r, &width, &height, &maxval); err != nil {
		return 0, 0, 0, fmt.Errorf("ppm: reading header: %w", err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, 0, fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	if maxval <= 0 || maxval > 65535 {
		return 0, 0, 0, fmt.Errorf("ppm: invalid maxval %d", maxval)
	}

	// The header's trailing whitespace (a single byte, conventionally
	// '\n') separates it from the binary body.
	if _, err := rd.r.ReadByte(); err != nil {
		return 0, 0, 0, fmt.Errorf("ppm: reading header separator: %w", err)
	}

	rd.width, rd.height, rd.maxval = width, height, maxval
	return width, height, maxval, nil
}

// Fetch returns the next pixel's (r, g, b) triple. It returns io.EOF
// once every pixel from the header's width*height has been fetched.
func (rd *Reader) Fetch() (r, g, b int, err error) {
	if rd.read >= rd.width*rd.height {
		return 0, 0, 0, io.EOF
	}

	var triple [3]byte
	if _, err := io.ReadFull(rd.r, triple[:]); err != nil {
		return 0, 0, 0, fmt.Errorf("ppm: reading pixel %d: %w", rd.read, err)
	}
	rd.read++
	return int(triple[0]), int(triple[1]), int(triple[2]), nil
}

// Close is a no-op retained for symmetry with Writer.Close; Reader does
// not own the underlying io.Reader.
func (rd *Reader) Close() error {
	return nil
}
