package root

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"hourlog/internal/ui"
)

// prompter reads answers from the command's input, one line at a time.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a y/N question. Anything but y or yes, including end of
// input, is a no.
func (p *prompter) Confirm(_ context.Context, prompt string) bool {
	fmt.Fprintf(p.out, "%s %s ", ui.Warn.Render(prompt), ui.Muted.Render("[y/N]"))
	answer, err := p.readLine()
	if err != nil {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Ask prompts for a value, returning def when the answer is blank.
func (p *prompter) Ask(label, def string) (string, error) {
	fmt.Fprintf(p.out, "%s %s ", ui.Key.Render(label+":"), ui.Muted.Render("["+def+"]"))
	answer, err := p.readLine()
	if err == io.EOF {
		fmt.Fprintln(p.out)
		return def, nil
	}
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
