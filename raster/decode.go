package raster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrReadPastBlockEnd is returned when decoding a raster block
	// requires more bytes than the block declared.
	ErrReadPastBlockEnd = errors.New("attempt to read data past end of block")

	// ErrLineOverflow is returned when a decoded line would grow
	// beyond MaxLineSize bytes.
	ErrLineOverflow = errors.New("unreasonably long line")
)

// UnsupportedCompressionError is returned when a raster block
// declares a compression method other than CompressionDeltaRow.
type UnsupportedCompressionError struct {
	Format int
}

func (e UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("unsupported raster compression type %d", e.Format)
}

// A Decoder reads raster pages from a PCL print stream.
//
// A Decoder must not be used from multiple goroutines concurrently;
// it owns the line buffer that raster blocks edit in place.
type Decoder struct {
	// Warn, if non-nil, receives non-fatal diagnostics, such as a
	// block declaring more bytes than its rows consume.
	Warn func(msg string)

	r io.ByteReader

	// seed line for delta-row decoding, edited in place by each row
	// record of the current page
	line       []byte
	lineOffset int
}

// NewDecoder returns a Decoder reading from r. If r is not already an
// io.ByteReader, it is wrapped in a bufio.Reader.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br}
}

// NextPage returns the next page in the print stream. A page ends at
// a form feed or at the end of the stream. NextPage returns io.EOF
// when the stream contains no further raster data; the stream's
// remaining pages cannot be located after any other error.
func (d *Decoder) NextPage() (*Page, error) {
	p := &Page{}
	d.line = d.line[:0]
	inRaster := false
	number := 0
	format := 0

scan:
	for {
		ch, err := d.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case ch == formFeed:
			break scan
		case ch == escape:
			ch1, err := d.readByte()
			if err != nil {
				return nil, err
			}
			ch2, err := d.readByte()
			if err != nil {
				return nil, err
			}
			if ch1 == '*' && (ch2 == 'b' || ch2 == 'B') {
				// start of a PCL raster escape sequence
				inRaster = true
				number = 0
			}
		case inRaster:
			switch {
			case ch >= '0' && ch <= '9':
				number = number*10 + int(ch-'0')
			case ch == 'm' || ch == 'M':
				format = number
			case ch == 'w' || ch == 'W':
				// graphics data block of `number` bytes
				if format != CompressionDeltaRow {
					return nil, UnsupportedCompressionError{Format: format}
				}
				cur := &blockCursor{d: d, remaining: number}
				if err := d.readBlock(cur, p); err != nil {
					return nil, err
				}
				if cur.remaining > 0 {
					d.warnf("%d unread bytes in block", cur.remaining)
					if err := cur.discard(); err != nil {
						return nil, err
					}
				}
			}
			switch {
			case ch >= '`' && ch <= '~':
				// lowercase parameter character
				number = 0
			case ch >= '@' && ch <= '^':
				// uppercase terminating character
				inRaster = false
			}
		}
	}
	if len(p.rows) == 0 {
		return nil, io.EOF
	}
	return p, nil
}

// readByte reads a byte that must be present: the stream ending here
// is an error.
func (d *Decoder) readByte() (byte, error) {
	ch, err := d.r.ReadByte()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return ch, err
}

func (d *Decoder) warnf(format string, args ...interface{}) {
	if d.Warn != nil {
		d.Warn(fmt.Sprintf(format, args...))
	}
}

// A blockCursor reads bytes from the underlying stream, bounded by
// the byte count declared for the current raster block. Reading past
// the bound fails with ErrReadPastBlockEnd.
type blockCursor struct {
	d         *Decoder
	remaining int
}

func (c *blockCursor) next() (byte, error) {
	if c.remaining <= 0 {
		return 0, ErrReadPastBlockEnd
	}
	c.remaining--
	return c.d.readByte()
}

// discard consumes the block's declared but unused remainder.
func (c *blockCursor) discard() error {
	for c.remaining > 0 {
		if _, err := c.next(); err != nil {
			return err
		}
	}
	return nil
}
