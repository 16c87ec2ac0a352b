package interp

import (
	"bufio"
	"io"
)

// lineReader yields input lines without their terminator. Lines longer than
// max are drained but not buffered; only their length is reported.
type lineReader struct {
	r   *bufio.Reader
	max int
	buf []byte
}

func newLineReader(r io.Reader, max int) *lineReader {
	return &lineReader{
		r:   bufio.NewReader(r),
		max: max,
		buf: make([]byte, 0, max),
	}
}

// next returns the next line and its full length in bytes. The returned
// slice is only valid until the following call. A line longer than max comes
// back empty with tooLong set.
func (lr *lineReader) next() (line []byte, n int, tooLong bool, err error) {
	lr.buf = lr.buf[:0]
	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			if err == io.EOF && n > 0 {
				break
			}
			return nil, n, false, err
		}
		n += len(chunk)
		if n <= lr.max {
			lr.buf = append(lr.buf, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if n > lr.max {
		return nil, n, true, nil
	}
	return lr.buf, n, false, nil
}
