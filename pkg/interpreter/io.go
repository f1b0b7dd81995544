package interpreter

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/cinskabotanicka/IPP2/pkg/program"
)

// InputPort yields one value per line; ok is false on EOF or malformed input.
type InputPort interface {
	ReadInt() (int64, bool)
	ReadString() (string, bool)
	ReadBool() (bool, bool)
}

// OutputPort is the program's standard output.
type OutputPort interface {
	WriteString(s string) error
	WriteInt(n int64) error
	Flush() error
}

// LineReader is an InputPort over any io.Reader
type LineReader struct {
	r   *bufio.Reader
	eof bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// readLine returns the next line without its terminator
func (l *LineReader) readLine() (string, bool) {
	if l.eof {
		return "", false
	}
	line, err := l.r.ReadString('\n')
	if err != nil {
		l.eof = true
		if !errors.Is(err, io.EOF) || line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}

func (l *LineReader) ReadInt() (int64, bool) {
	line, ok := l.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ReadString decodes escape sequences once, when the value is materialized
func (l *LineReader) ReadString() (string, bool) {
	line, ok := l.readLine()
	if !ok {
		return "", false
	}
	return program.DecodeEscapes(line), true
}

// ReadBool accepts "true" in any case as true, any other line is false
func (l *LineReader) ReadBool() (bool, bool) {
	line, ok := l.readLine()
	if !ok {
		return false, false
	}
	return strings.EqualFold(strings.TrimSpace(line), "true"), true
}

// Writer is a buffered OutputPort
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) WriteString(s string) error {
	_, err := w.w.WriteString(s)
	return err
}

func (w *Writer) WriteInt(n int64) error {
	_, err := w.w.WriteString(strconv.FormatInt(n, 10))
	return err
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}
