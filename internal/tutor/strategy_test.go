package tutor

import (
	"testing"

	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/textnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		in    string
		kind  topicKind
		topic string
	}{
		{"who was albert einstein", topicPerson, "albert einstein"},
		{"who is akbar", topicPerson, "akbar"},
		{"what is python", topicEntity, "python"},
		{"what are data structures", topicEntity, "data structures"},
		{"when did world war ii end", topicGeneral, "did world war ii end"},
		{"how do plants grow", topicGeneral, "do plants grow"},
		{"tell me about rome", topicNone, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, topic := extractTopic(tt.in)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.topic, topic)
		})
	}
}

func TestOverlapStrategy(t *testing.T) {
	store := builtinStore(t)
	math, _ := store.Subject("Mathematics")

	q := "pythagorean theorem proof"
	m, ok := overlapStrategy{}.match(query{raw: q, normalized: textnorm.Normalize(q), home: math}, []*corpus.Subject{math})
	require.True(t, ok)
	assert.Equal(t, math.Pairs[0].Answer, m.Answer)
	assert.Equal(t, "Mathematics:generated_pythagorean theorem proof", m.Key)
	assert.InDelta(t, 2.0/3.0, m.Score, 1e-9)
}

func TestOverlapStrategy_NeedsTwoSharedWords(t *testing.T) {
	store := builtinStore(t)
	math, _ := store.Subject("Mathematics")

	q := "calculus"
	_, ok := overlapStrategy{}.match(query{raw: q, normalized: q, home: math}, []*corpus.Subject{math})
	assert.False(t, ok)
}

func TestDefinesEntity(t *testing.T) {
	assert.True(t, definesEntity("Python is a high-level language.", "python"))
	assert.False(t, definesEntity("Python, the language.", "python"), "no definitional phrase")
	assert.False(t, definesEntity("One two three four five six seven eight nine ten python is a snake.", "python"), "entity past the first ten words")
}

func TestKeywordStrategy_RequiresKnownSubject(t *testing.T) {
	_, ok := keywordStrategy{}.match(query{normalized: "what is calculus"}, nil)
	assert.False(t, ok)
}

func TestMatch_KeysIdentifySubjectAndQuestion(t *testing.T) {
	tu := newTestTutor(t)
	m, ok := tu.Match("What is calculus?", "Mathematics")
	require.True(t, ok)
	assert.Equal(t, StrategyExact, m.Strategy)
	assert.Equal(t, "Mathematics:what is calculus", m.Key)
}

func TestTopicStrategy_EntityNeedsWholeWord(t *testing.T) {
	store := builtinStore(t)
	math, _ := store.Subject("Mathematics")
	s := topicStrategy{store: store}

	q := "what is pi"
	_, ok := s.match(query{raw: q, normalized: q, home: math}, []*corpus.Subject{math})
	assert.False(t, ok, "pi must not match inside respiration")

	q = "what is respiration"
	m, ok := s.match(query{raw: q, normalized: q, home: math}, []*corpus.Subject{math})
	require.True(t, ok)
	assert.Equal(t, "Science", m.Subject.Name)
}
