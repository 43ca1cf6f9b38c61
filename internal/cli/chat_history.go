package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/tutor/internal/config"
)

const maxHistoryLines = 500

// DefaultChatHistoryPath returns the default chat input history file.
func DefaultChatHistoryPath() string {
	return filepath.Join(config.HomeDir(), "chat_history")
}

// loadHistoryFromPath reads the most recent input lines from path.
// Returns nil if the file does not exist or cannot be read.
func loadHistoryFromPath(path string) []string {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}

// appendHistoryToPath appends one line to path. Failures are ignored.
func appendHistoryToPath(path, line string) {
	line = strings.TrimSpace(line)
	if path == "" || line == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.WriteString(line + "\n")
}
