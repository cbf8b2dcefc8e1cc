package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for input.
type Prompter interface {
	// Secret reads a value without echoing it.
	Secret(label string) (string, error)
}

// TerminalPrompter reads from stdin. Input is hidden when stdin is a
// terminal and read line by line otherwise.
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer

	reader *bufio.Reader
}

// NewTerminalPrompter prompts on stderr and reads stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

// Secret implements Prompter.
func (p *TerminalPrompter) Secret(label string) (string, error) {
	fmt.Fprint(p.Out, label)

	fd := int(p.In.Fd())
	if term.IsTerminal(fd) {
		value, err := term.ReadPassword(fd)
		fmt.Fprintln(p.Out)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.TrimSpace(label), err)
		}
		return string(value), nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
