package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/tutor/internal/corpus"
)

const (
	// DefaultMaxItems caps the pairs taken from one source.
	DefaultMaxItems = 50

	minQuestionLen = 10
	minAnswerLen   = 20
)

// ErrUnparseable is returned for JSON sources with no recognised shape.
var ErrUnparseable = errors.New("unrecognised dataset format")

// Format selects the parser for a source.
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

// DetectFormat picks JSON for .json URLs or JSON content types and text
// otherwise.
func DetectFormat(url, contentType string) Format {
	path := url
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") || strings.Contains(contentType, "json") {
		return FormatJSON
	}
	return FormatText
}

// Parse extracts question and answer pairs from body, at most maxItems.
func Parse(body []byte, format Format, maxItems int) ([]corpus.QAPair, error) {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if format == FormatJSON {
		return parseJSON(body, maxItems)
	}
	return parseText(body, maxItems), nil
}

type record struct {
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correct_answer"`
}

func (r record) pair() (corpus.QAPair, bool) {
	a := r.Answer
	if a == "" {
		a = r.CorrectAnswer
	}
	p := corpus.QAPair{Question: strings.TrimSpace(r.Question), Answer: strings.TrimSpace(a)}
	return p, longEnough(p)
}

func longEnough(p corpus.QAPair) bool {
	return utf8.RuneCountInString(p.Question) > minQuestionLen && utf8.RuneCountInString(p.Answer) > minAnswerLen
}

func parseJSON(body []byte, maxItems int) ([]corpus.QAPair, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnparseable)
	}

	switch body[0] {
	case '[':
		return parseRecords(body, maxItems)
	case '{':
		var wrapped struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
		}
		if d := bytes.TrimSpace(wrapped.Data); len(d) > 0 && d[0] == '[' {
			return parseRecords(d, maxItems)
		}
		return parseQuestionMap(body, maxItems)
	default:
		return nil, fmt.Errorf("%w: top level is neither list nor object", ErrUnparseable)
	}
}

// parseRecords reads the first maxItems list entries. Malformed or short
// entries still count toward the cap.
func parseRecords(body []byte, maxItems int) ([]corpus.QAPair, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	var out []corpus.QAPair
	for _, raw := range items {
		var r record
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		if p, ok := r.pair(); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// parseQuestionMap reads an object of question to answer strings in
// document order.
func parseQuestionMap(body []byte, maxItems int) ([]corpus.QAPair, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	var out []corpus.QAPair
	for dec.More() && len(out) < maxItems {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
		}
		var answer string
		if json.Unmarshal(raw, &answer) != nil {
			continue
		}
		if p := (corpus.QAPair{Question: key, Answer: answer}); longEnough(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// parseText treats a line ending in "?" or a "##" heading as a question and
// the non-blank lines after it as its answer.
func parseText(body []byte, maxItems int) []corpus.QAPair {
	var out []corpus.QAPair
	var question string
	var answer []string

	flush := func() {
		if question != "" && len(answer) > 0 && len(out) < maxItems {
			p := corpus.QAPair{Question: question, Answer: strings.Join(answer, "\n")}
			if longEnough(p) {
				out = append(out, p)
			}
		}
	}

	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "?") || (strings.HasPrefix(line, "##") && utf8.RuneCountInString(line) > 5) {
			flush()
			question = strings.TrimSpace(strings.TrimLeft(line, "#"))
			answer = answer[:0]
			continue
		}
		if question != "" {
			answer = append(answer, line)
		}
	}
	flush()
	return out
}
