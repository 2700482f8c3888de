// Package ppm implements binary PPM (P6) reading and writing. The
// writer hands the renderer a framebuffer slice to write directly into
// rather than buffering individual pixel writes; the reader is the
// writer's inverse, used for round-trip verification.
package ppm

import (
	"bufio"
	"fmt"
	"io"
)

// Writer streams a single P6 image to an underlying io.Writer. Open
// allocates the framebuffer and writes the header immediately; the
// caller (the renderer) then writes pixels directly into the slice
// returned by Data, and Store flushes that slice as the image body.
type Writer struct {
	w      *bufio.Writer
	width  int
	height int
	maxval int
	data   []byte
}

// NewWriter wraps w for writing one PPM image.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Open writes the P6 header ("P6\n<w> <h>\n<maxval>\n") and allocates a
// width*height*3-byte framebuffer.
func (wr *Writer) Open(width, height, maxval int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	if maxval <= 0 || maxval > 65535 {
		return fmt.Errorf("ppm: invalid maxval %d", maxval)
	}

	if _, err := fmt.Fprintf(wr.w, "P6\n%d %d\n%d\n", width, height, maxval); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}

	wr.width = width
	wr.height = height
	wr.maxval = maxval
	wr.data = make([]byte, width*height*3)
	return nil
}

// Data returns the mutable framebuffer slice. The renderer writes
// pixels directly into it; Writer performs no per-pixel I/O.
func (wr *Writer) Data() []byte {
	return wr.data
}

// Store flushes the framebuffer to the underlying stream as the image
// body, in a single write.
func (wr *Writer) Store() error {
	if _, err := wr.w.Write(wr.data); err != nil {
		return fmt.Errorf("ppm: writing image body: %w", err)
	}
	return nil
}

// Close flushes any buffered output. It does not close the underlying
// io.Writer, which the caller owns.
func (wr *Writer) Close() error {
	if err := wr.w.Flush(); err != nil {
		return fmt.Errorf("ppm: flushing: %w", err)
	}
	return nil
}
