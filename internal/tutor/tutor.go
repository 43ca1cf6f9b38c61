// Package tutor answers free-text questions from a subject-scoped corpus.
// A question runs through arithmetic interception, an ordered chain of
// matching strategies, repetition avoidance, and finally a canned fallback.
package tutor

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexanderramin/tutor/internal/arith"
	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/textnorm"
	"github.com/google/uuid"
)

// Kind classifies how a response was produced.
type Kind string

const (
	KindArithmetic Kind = "arithmetic"
	KindMatch      Kind = "match"
	KindFallback   Kind = "fallback"
	KindEmpty      Kind = "empty"
	KindError      Kind = "error"
)

const arithmeticSubject = "mathematics"

// Response is a reply and how it was produced.
type Response struct {
	Text      string
	Kind      Kind
	Strategy  string
	Subject   string // subject the answer came from, if matched
	Score     float64
	RequestID string
}

// Tutor answers questions. It owns per-session repetition state and is not
// safe for concurrent use.
type Tutor struct {
	store      *corpus.Store
	strategies []strategy
	guard      *RepetitionGuard
	fallback   *FallbackGenerator
	logger     *slog.Logger
	threshold  float64
	chooser    Chooser

	overrideStrategies []strategy
}

// Option configures a Tutor.
type Option func(*Tutor)

// WithChooser sets the randomness source for fallbacks and rephrasing.
func WithChooser(c Chooser) Option {
	return func(t *Tutor) { t.chooser = c }
}

// WithThreshold sets the minimum TF-IDF cosine similarity for a match.
func WithThreshold(threshold float64) Option {
	return func(t *Tutor) { t.threshold = threshold }
}

// WithLogger sets the logger used for match diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tutor) { t.logger = l }
}

// withStrategies replaces the matching chain; used by tests.
func withStrategies(s ...strategy) Option {
	return func(t *Tutor) { t.overrideStrategies = s }
}

// New returns a Tutor answering from store.
func New(store *corpus.Store, opts ...Option) *Tutor {
	t := &Tutor{
		store:     store,
		threshold: DefaultThreshold,
		chooser:   randomChooser{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.chooser == nil {
		t.chooser = randomChooser{}
	}
	t.guard = NewRepetitionGuard(t.chooser)
	t.fallback = NewFallbackGenerator(t.chooser)
	t.strategies = []strategy{
		exactStrategy{},
		keywordStrategy{},
		substringStrategy{},
		topicStrategy{store: store},
		tfidfStrategy{store: store, threshold: t.threshold},
		overlapStrategy{},
	}
	if t.overrideStrategies != nil {
		t.strategies = t.overrideStrategies
	}
	return t
}

// Store returns the corpus the tutor answers from.
func (t *Tutor) Store() *corpus.Store { return t.store }

// GetResponse returns the reply text for question in subject. It never
// fails; internal errors become an apologetic message.
func (t *Tutor) GetResponse(question, subject string) string {
	return t.Respond(question, subject).Text
}

// Respond is GetResponse with details on how the reply was produced.
func (t *Tutor) Respond(question, subject string) (resp Response) {
	requestID := uuid.New().String()[:8]
	resp.RequestID = requestID
	log := t.logger.With("request_id", requestID, "subject", subject)

	defer func() {
		if r := recover(); r != nil {
			log.Error("get response failed", "panic", r)
			resp = Response{
				Text:      errorText(fmt.Errorf("%v", r)),
				Kind:      KindError,
				RequestID: requestID,
			}
		}
	}()

	if strings.TrimSpace(question) == "" {
		resp.Text = fmt.Sprintf("Please ask me a question about %s.", subjectLabel(subject))
		resp.Kind = KindEmpty
		return resp
	}

	if strings.EqualFold(strings.TrimSpace(subject), arithmeticSubject) {
		if text, ok := arith.TryArithmetic(question); ok {
			log.Debug("arithmetic handled", "question", question)
			resp.Text, resp.Kind = text, KindArithmetic
			return resp
		}
	}

	m, ok := t.Match(question, subject)
	if !ok {
		log.Debug("no match, using fallback", "question", question)
		resp.Text, resp.Kind = t.fallback.Generate(subject), KindFallback
		return resp
	}

	log.Debug("matched", "strategy", m.Strategy, "score", m.Score, "from", m.Subject.Name)
	text := t.guard.Apply(m)
	if home, known := t.store.Subject(subject); (!known || home != m.Subject) && strings.TrimSpace(subject) != "" {
		text = fmt.Sprintf("While this is not strictly %s, I can tell you that: %s", displaySubject(home, subject), text)
	}
	resp.Text = text
	resp.Kind = KindMatch
	resp.Strategy = m.Strategy
	resp.Subject = m.Subject.Name
	resp.Score = m.Score
	return resp
}

// Match runs the strategy chain and returns the first hit. Unknown subjects
// are searched across the whole corpus.
func (t *Tutor) Match(question, subject string) (Match, bool) {
	q := query{raw: question, normalized: textnorm.Normalize(question)}
	scope := t.store.Subjects()
	if home, ok := t.store.Subject(subject); ok {
		q.home = home
		scope = []*corpus.Subject{home}
	}
	if q.normalized == "" {
		return Match{}, false
	}
	for _, s := range t.strategies {
		if m, ok := s.match(q, scope); ok {
			return m, true
		}
	}
	return Match{}, false
}

// Fallbacks lists the fallback replies possible for subject.
func (t *Tutor) Fallbacks(subject string) []string {
	return t.fallback.Candidates(subject)
}

func displaySubject(home *corpus.Subject, requested string) string {
	if home != nil {
		return home.Name
	}
	return strings.TrimSpace(requested)
}

func errorText(err error) string {
	return fmt.Sprintf("I'm sorry, I encountered an error while processing your question. (%v)", err)
}
