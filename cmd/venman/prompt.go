package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads answers line by line from one buffered reader so that
// successive prompts never lose input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints message and returns the trimmed answer. io.EOF is returned only
// when the input ended before any character was read.
func (p *prompter) ask(message string) (string, error) {
	fmt.Fprint(p.out, message)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
