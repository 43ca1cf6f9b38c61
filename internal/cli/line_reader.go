package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// lineReader yields chat input lines.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// promptReader reads plain lines from a non-terminal input and keeps the
// history file itself.
type promptReader struct {
	in          io.Reader
	out         io.Writer
	historyPath string
}

func (r *promptReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := readPromptLine(r.in)
	appendHistoryToPath(r.historyPath, line)
	return line, err
}

func (r *promptReader) Close() error { return nil }

// terminalReader adds line editing and persistent history on a terminal.
type terminalReader struct {
	rl *readline.Instance
}

func newTerminalReader(historyPath string) (*terminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyPath,
		HistoryLimit:    maxHistoryLines,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("starting line editor: %w", err)
	}
	return &terminalReader{rl: rl}, nil
}

// ReadLine treats Ctrl-C on an empty line as end of input.
func (r *terminalReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if line == "" {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

func (r *terminalReader) Close() error { return r.rl.Close() }
