package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// promptYesNoIO asks a yes/no question on out and reads the reply from in.
// Anything other than y or yes, including EOF, is no.
func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil && text == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// readPromptLine reads until either LF or CR so Enter works in normal and
// raw terminal modes. A final line without a terminator is returned with a
// nil error.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			if one[0] == '\n' || one[0] == '\r' {
				return string(buf), nil
			}
			buf = append(buf, one[0])
		}

		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
