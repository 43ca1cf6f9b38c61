package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadLegacy reads a JSON corpus file. The top level is an object keyed by
// subject; each value is one of
//
//	{"question": "answer", ...}
//	["question", "answer", "question", "answer", ...]
//	[{"question": "...", "answer": "..."}, ...]
//
// Key order in the file is kept as match priority.
func LoadLegacy(path string) (LegacyCorpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return LegacyCorpus{}, fmt.Errorf("opening legacy corpus: %w", err)
	}
	defer f.Close()
	return DecodeLegacy(f)
}

// DecodeLegacy parses a legacy JSON corpus from r.
func DecodeLegacy(r io.Reader) (LegacyCorpus, error) {
	dec := json.NewDecoder(r)
	var out LegacyCorpus
	err := decodeObject(dec, func(subject string, raw json.RawMessage) error {
		pairs, err := decodePairs(raw)
		if err != nil {
			return fmt.Errorf("subject %q: %w", subject, err)
		}
		out.Subjects = append(out.Subjects, SubjectData{Name: subject, Pairs: pairs})
		return nil
	})
	if err != nil {
		return LegacyCorpus{}, fmt.Errorf("decoding legacy corpus: %w", err)
	}
	return out, nil
}

func decodePairs(raw json.RawMessage) ([]QAPair, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty value")
	}
	switch trimmed[0] {
	case '{':
		var pairs []QAPair
		err := decodeObject(json.NewDecoder(bytes.NewReader(trimmed)), func(q string, v json.RawMessage) error {
			var a string
			if err := json.Unmarshal(v, &a); err != nil {
				return fmt.Errorf("answer for %q is not a string", q)
			}
			pairs = append(pairs, QAPair{Question: q, Answer: a})
			return nil
		})
		return pairs, err
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, nil
		}
		if first := bytes.TrimSpace(items[0]); len(first) > 0 && first[0] == '"' {
			return decodeAlternating(items)
		}
		pairs := make([]QAPair, 0, len(items))
		for i, item := range items {
			var rec struct {
				Question      string `json:"question"`
				Answer        string `json:"answer"`
				CorrectAnswer string `json:"correct_answer"`
			}
			if err := json.Unmarshal(item, &rec); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			if rec.Answer == "" {
				rec.Answer = rec.CorrectAnswer
			}
			pairs = append(pairs, QAPair{Question: rec.Question, Answer: rec.Answer})
		}
		return pairs, nil
	default:
		return nil, fmt.Errorf("expected object or array")
	}
}

func decodeAlternating(items []json.RawMessage) ([]QAPair, error) {
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("alternating list has odd length %d", len(items))
	}
	pairs := make([]QAPair, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		var q, a string
		if err := json.Unmarshal(items[i], &q); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if err := json.Unmarshal(items[i+1], &a); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		pairs = append(pairs, QAPair{Question: q, Answer: a})
	}
	return pairs, nil
}

// decodeObject walks a JSON object in document order.
func decodeObject(dec *json.Decoder, fn func(key string, value json.RawMessage) error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
