package tutor

import (
	"strings"
	"testing"

	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/tfidf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinStore(t *testing.T) *corpus.Store {
	t.Helper()
	store, err := corpus.NewStore(corpus.Builtin())
	require.NoError(t, err)
	return store
}

func fixed(i int) Chooser {
	return ChooserFunc(func(int) int { return i })
}

func newTestTutor(t *testing.T, opts ...Option) *Tutor {
	t.Helper()
	return New(builtinStore(t), append([]Option{WithChooser(fixed(0))}, opts...)...)
}

func TestGetResponse_EveryStoredQuestionReturnsItsAnswer(t *testing.T) {
	store := builtinStore(t)
	tu := New(store, WithChooser(fixed(0)))

	for _, subj := range store.Subjects() {
		for _, p := range subj.Pairs {
			t.Run(subj.Name+"/"+p.Question, func(t *testing.T) {
				assert.Equal(t, p.Answer, tu.GetResponse(p.Question, subj.Name))
			})
		}
	}
}

func TestGetResponse_RepeatIsNotVerbatim(t *testing.T) {
	tu := newTestTutor(t)
	q := "What is the Pythagorean theorem?"

	first := tu.GetResponse(q, "Mathematics")
	second := tu.GetResponse(q, "Mathematics")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(second, first) || strings.HasPrefix(second, alternativePrefix), second)
}

func TestGetResponse_SubjectIsCaseInsensitive(t *testing.T) {
	tu := newTestTutor(t)
	resp := tu.Respond("What is calculus?", "mATHEMATICS")
	assert.Equal(t, KindMatch, resp.Kind)
	assert.False(t, strings.HasPrefix(resp.Text, "While this is not strictly"))
}

func TestGetResponse_CrossSubjectPerson(t *testing.T) {
	store := builtinStore(t)
	tu := New(store, WithChooser(fixed(0)))
	history, _ := store.Subject("History")

	got := tu.GetResponse("Who was Albert Einstein?", "Mathematics")
	assert.Equal(t, "While this is not strictly Mathematics, I can tell you that: "+history.Pairs[0].Answer, got)
}

func TestGetResponse_CrossSubjectEntity(t *testing.T) {
	store := builtinStore(t)
	tu := New(store, WithChooser(fixed(0)))
	programming, _ := store.Subject("Programming")

	resp := tu.Respond("What is Python?", "Mathematics")
	assert.Equal(t, StrategyTopic, resp.Strategy)
	assert.Equal(t, "Programming", resp.Subject)
	assert.Equal(t, "While this is not strictly Mathematics, I can tell you that: "+programming.Pairs[4].Answer, resp.Text)
}

func TestGetResponse_ShortEntityDoesNotMatchInsideWords(t *testing.T) {
	tu := newTestTutor(t)

	resp := tu.Respond("What is pi?", "Mathematics")
	assert.NotEqual(t, StrategyTopic, resp.Strategy)
	assert.NotContains(t, resp.Text, "Cellular respiration")
}

func TestGetResponse_PersonFoundInBiographicalAnswer(t *testing.T) {
	store := builtinStore(t)
	tu := New(store, WithChooser(fixed(0)))
	history, _ := store.Subject("History")

	resp := tu.Respond("Who was Akbar?", "History")
	assert.Equal(t, StrategyTopic, resp.Strategy)
	assert.Equal(t, history.Pairs[2].Answer, resp.Text)
}

func TestGetResponse_UnknownSubjectSearchesEverything(t *testing.T) {
	store := builtinStore(t)
	tu := New(store, WithChooser(fixed(0)))
	science, _ := store.Subject("Science")

	got := tu.GetResponse("What is photosynthesis?", "Geography")
	assert.Equal(t, "While this is not strictly Geography, I can tell you that: "+science.Pairs[0].Answer, got)
}

func TestGetResponse_KeywordRule(t *testing.T) {
	store := builtinStore(t)
	tu := New(store, WithChooser(fixed(0)))
	science, _ := store.Subject("Science")

	resp := tu.Respond("Tell me about photosynthesis in plants", "Science")
	assert.Equal(t, StrategyKeyword, resp.Strategy)
	assert.Equal(t, science.Pairs[0].Answer, resp.Text)
}

func TestGetResponse_QuadraticFormulaRule(t *testing.T) {
	tu := newTestTutor(t)
	resp := tu.Respond("Explain the quadratic formula", "Mathematics")
	assert.Equal(t, StrategyKeyword, resp.Strategy)
	assert.Contains(t, resp.Text, "The quadratic formula is used to solve equations")
}

func TestGetResponse_Substring(t *testing.T) {
	store := builtinStore(t)
	tu := New(store, WithChooser(fixed(0)))
	history, _ := store.Subject("History")

	resp := tu.Respond("So, when did World War II end exactly?", "History")
	assert.Equal(t, StrategySubstring, resp.Strategy)
	assert.Equal(t, history.Pairs[1].Answer, resp.Text)
}

func TestGetResponse_TFIDFParaphrase(t *testing.T) {
	store := builtinStore(t)
	tu := New(store, WithChooser(fixed(0)))
	programming, _ := store.Subject("Programming")

	resp := tu.Respond("explain object oriented programming paradigms", "Programming")
	assert.Equal(t, StrategyTFIDF, resp.Strategy)
	assert.Equal(t, programming.Pairs[1].Answer, resp.Text)
	assert.GreaterOrEqual(t, resp.Score, DefaultThreshold)
}

func TestGetResponse_ThresholdIsInclusive(t *testing.T) {
	store := builtinStore(t)
	programming, _ := store.Subject("Programming")
	v, m := programming.Vectorized()
	q := "variable storage"
	_, score := tfidf.Best(v.Transform(q), m)
	require.Greater(t, score, 0.0)

	atThreshold := New(store, WithChooser(fixed(0)), WithThreshold(score))
	resp := atThreshold.Respond(q, "Programming")
	assert.Equal(t, StrategyTFIDF, resp.Strategy)

	above := New(store, WithChooser(fixed(0)), WithThreshold(score+1e-9))
	resp = above.Respond(q, "Programming")
	assert.Equal(t, KindFallback, resp.Kind)
}

func TestGetResponse_Arithmetic(t *testing.T) {
	tu := newTestTutor(t)
	assert.Equal(t, "The answer is 84.", tu.GetResponse("What is 12 times 7?", "Mathematics"))
	assert.Equal(t, "The answer is 84.", tu.GetResponse("What is 12 times 7?", "Mathematics"), "arithmetic is not subject to repetition rewording")
}

func TestGetResponse_ArithmeticOnlyForMathematics(t *testing.T) {
	tu := newTestTutor(t)
	resp := tu.Respond("What is 12 times 7?", "Science")
	assert.NotEqual(t, KindArithmetic, resp.Kind)
	assert.NotContains(t, resp.Text, "84")
}

func TestGetResponse_FallbackForKnownSubject(t *testing.T) {
	tu := newTestTutor(t)
	resp := tu.Respond("asdfqwer zxcv", "Mathematics")
	assert.Equal(t, KindFallback, resp.Kind)
	assert.Contains(t, tu.Fallbacks("Mathematics"), resp.Text)
}

func TestGetResponse_FallbackForUnknownSubjectNamesIt(t *testing.T) {
	tu := newTestTutor(t)
	got := tu.GetResponse("asdfqwer zxcv", "Geography")
	assert.Equal(t, "I don't have specific information about that in Geography. Can you ask something else or try rephrasing your question?", got)
}

func TestGetResponse_EmptyQuestion(t *testing.T) {
	tu := newTestTutor(t)
	resp := tu.Respond("   ", "Science")
	assert.Equal(t, KindEmpty, resp.Kind)
	assert.Equal(t, "Please ask me a question about Science.", resp.Text)
}

func TestGetResponse_RequestIDAssigned(t *testing.T) {
	tu := newTestTutor(t)
	resp := tu.Respond("What is physics?", "Science")
	assert.Len(t, resp.RequestID, 8)
}

// ============ NEGATIVE TEST CASES ============

type panicStrategy struct{}

func (panicStrategy) name() string { return "panic" }

func (panicStrategy) match(query, []*corpus.Subject) (Match, bool) {
	panic("index corrupted")
}

func TestGetResponse_NeverFails(t *testing.T) {
	tu := New(builtinStore(t), WithChooser(fixed(0)), withStrategies(panicStrategy{}))

	resp := tu.Respond("What is physics?", "Science")
	assert.Equal(t, KindError, resp.Kind)
	assert.True(t, strings.HasPrefix(resp.Text, "I'm sorry, I encountered an error while processing your question."))
	assert.Contains(t, resp.Text, "index corrupted")
}

func TestGetResponse_PunctuationOnlyFallsBack(t *testing.T) {
	tu := newTestTutor(t)
	resp := tu.Respond("???", "History")
	assert.Equal(t, KindFallback, resp.Kind)
}

func TestGetResponse_ArticleOnlyTopicDoesNotMatch(t *testing.T) {
	tu := newTestTutor(t)
	resp := tu.Respond("What is a?", "History")
	assert.Equal(t, KindFallback, resp.Kind)
}
