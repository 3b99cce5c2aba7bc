package ticket

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// DefaultMaxLineBytes bounds one line of session input.
const DefaultMaxLineBytes = 64 * 1024

// inputLine is one read from the session input. TooLong lines carry no text.
type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// lineReader reads newline-terminated lines without ever holding more
// than max bytes of a single line in memory.
type lineReader struct {
	r   *bufio.Reader
	max int
}

func newLineReader(r io.Reader, max int) *lineReader {
	return &lineReader{r: bufio.NewReader(r), max: max}
}

// next returns the next line with its terminator ("\n" or "\r\n")
// removed. The remainder of an over-long line is consumed and dropped.
func (lr *lineReader) next() inputLine {
	var buf []byte
	tooLong := false
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if !tooLong && len(buf)+len(chunk) <= lr.max+2 {
			buf = append(buf, chunk...)
		} else {
			tooLong = true
			buf = nil
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && (!errors.Is(err, io.EOF) || (len(buf) == 0 && !tooLong)) {
			return inputLine{err: err}
		}

		text := strings.TrimSuffix(strings.TrimSuffix(string(buf), "\n"), "\r")
		if tooLong || len(text) > lr.max {
			return inputLine{tooLong: true}
		}

		return inputLine{text: text}
	}
}

// feed pushes lines into out until the input fails or stop is closed.
// The final line sent carries the terminating error (io.EOF on a clean end).
func (lr *lineReader) feed(out chan<- inputLine, stop <-chan struct{}) {
	for {
		l := lr.next()
		select {
		case out <- l:
		case <-stop:
			return
		}
		if l.err != nil {
			return
		}
	}
}
