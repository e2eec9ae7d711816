// Package prompt implements the question-and-answer fallback the
// command line tool uses when flags leave required values unset.
//
// Unusable answers re-prompt with a short hint; end of input aborts
// with ErrAborted.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-colorimetry/internal/pipeline"
)

// ErrAborted is returned when the input stream ends before a usable
// answer arrives.
var ErrAborted = errors.New("prompt: input closed")

// Session asks questions on one output stream and reads answers from
// one input stream.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Session reading from r and prompting on w.
func New(r io.Reader, w io.Writer) *Session {
	return &Session{scanner: bufio.NewScanner(r), out: w}
}

// String asks for a non-empty line.
func (s *Session) String(label string) (string, error) {
	for {
		answer, err := s.ask(label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}

		fmt.Fprintln(s.out, "please enter a value")
	}
}

// Float asks for a finite number, re-prompting until one parses.
func (s *Session) Float(label string) (float64, error) {
	for {
		answer, err := s.ask(label)
		if err != nil {
			return 0, err
		}

		v, err := strconv.ParseFloat(answer, 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}

		fmt.Fprintf(s.out, "%q is not a number\n", answer)
	}
}

// PositiveFloat asks for a number greater than zero.
func (s *Session) PositiveFloat(label string) (float64, error) {
	for {
		v, err := s.Float(label)
		if err != nil {
			return 0, err
		}
		if v > 0 {
			return v, nil
		}

		fmt.Fprintln(s.out, "the value must be positive")
	}
}

// Mode asks which quantity to sweep.
func (s *Session) Mode(label string) (pipeline.Mode, error) {
	for {
		answer, err := s.ask(label)
		if err != nil {
			return 0, err
		}

		mode, err := pipeline.ParseMode(answer)
		if err == nil {
			return mode, nil
		}

		fmt.Fprintf(s.out, "%q is neither temperature nor voltage\n", answer)
	}
}

func (s *Session) ask(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("prompt: read: %w", err)
		}
		return "", ErrAborted
	}

	return strings.TrimSpace(s.scanner.Text()), nil
}
