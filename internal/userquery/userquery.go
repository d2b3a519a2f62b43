// Package userquery collects interactive input from the user's terminal.
package userquery

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Terminal reads answers from an input stream and echoes prompts to an
// output stream. It satisfies config.Prompter.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the input's file descriptor when it is a real terminal,
	// -1 otherwise. Only ReadSecret cares.
	fd int
}

// New returns a Terminal reading from in and writing prompts to out. The
// input is treated as a plain stream; ReadSecret falls back to an echoing
// read.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, fd: -1}
}

// Stdio returns a Terminal bound to standard input and output, with secret
// reads disabled from echoing when stdin is a real terminal.
func Stdio() *Terminal {
	t := New(os.Stdin, os.Stdout)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		t.fd = fd
	}
	return t
}

// Choose presents a numbered menu and blocks until the user picks one of
// the options by its 1-based number. The returned string is always one of
// the given options, verbatim. Running out of input is an error.
func (t *Terminal) Choose(prompt string, options []string) (string, error) {
	fmt.Fprintf(t.out, "%s\n", prompt)
	for i, option := range options {
		fmt.Fprintf(t.out, " %d. %s\n", i+1, option)
	}

	for {
		answer, err := t.ReadLine("? ")
		if err != nil {
			return "", err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(answer))
		if convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		fmt.Fprintf(t.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}

// ReadLine prints prompt and returns one line of input with the line ending
// stripped. No other trimming is applied.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", fmt.Errorf("unexpected end of input: %w", io.ErrUnexpectedEOF)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSecret prints prompt and reads one line without echoing it back, when
// the input is a real terminal. Otherwise it behaves like ReadLine.
func (t *Terminal) ReadSecret(prompt string) (string, error) {
	if t.fd < 0 {
		return t.ReadLine(prompt)
	}
	fmt.Fprint(t.out, prompt)
	secret, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
