// Package prompt implements the interactive terminal prompts used by the
// provisioning flow.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader asks questions on out and reads answers line by line from in.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader creates a Reader over the given input and output streams.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Line prints the label and returns the next input line with surrounding
// whitespace trimmed. Returns io.EOF if input is closed before an answer.
func (r *Reader) Line(label string) (string, error) {
	fmt.Fprint(r.out, label)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(r.scanner.Text()), nil
}

// YesNo prints the label and reports whether the answer was an exact
// case-insensitive "yes". Any other answer, including "y" and "true",
// counts as no.
func (r *Reader) YesNo(label string) (bool, error) {
	answer, err := r.Line(label)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// IsYes reports whether s is exactly "yes", ignoring case.
func IsYes(s string) bool {
	return strings.EqualFold(s, "yes")
}
