package tutor

import (
	"strings"

	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/textnorm"
	"github.com/alexanderramin/tutor/internal/tfidf"
)

// DefaultThreshold is the minimum cosine similarity a TF-IDF match needs.
const DefaultThreshold = 0.3

// overlapMinShared and overlapMinScore gate keyword-overlap matches.
const (
	overlapMinShared = 2
	overlapMinScore  = 0.5
)

var (
	biographicalIndicators = []string{"born", "was a", "is a", "died", "lived", "known for"}
	definitionalIndicators = []string{"is a", "are a", "refers to", "defined as"}
)

// Strategy names, as reported in Match.Strategy.
const (
	StrategyExact     = "exact"
	StrategyKeyword   = "keyword"
	StrategySubstring = "substring"
	StrategyTopic     = "topic"
	StrategyTFIDF     = "tfidf"
	StrategyOverlap   = "overlap"
)

// Match is a stored answer chosen for a question.
type Match struct {
	Answer   string
	Subject  *corpus.Subject
	Key      string
	Strategy string
	Score    float64
}

type query struct {
	raw        string
	normalized string
	home       *corpus.Subject // nil when the requested subject is unknown
}

type strategy interface {
	name() string
	match(q query, scope []*corpus.Subject) (Match, bool)
}

func questionKey(subj *corpus.Subject, i int) string {
	return subj.Name + ":" + subj.NormalizedQuestion(i)
}

func pairMatch(subj *corpus.Subject, i int, strategy string) Match {
	return Match{
		Answer:   subj.Pairs[i].Answer,
		Subject:  subj,
		Key:      questionKey(subj, i),
		Strategy: strategy,
		Score:    1,
	}
}

type exactStrategy struct{}

func (exactStrategy) name() string { return StrategyExact }

func (exactStrategy) match(q query, scope []*corpus.Subject) (Match, bool) {
	for _, subj := range scope {
		for i := range subj.Pairs {
			if subj.NormalizedQuestion(i) == q.normalized {
				return pairMatch(subj, i, StrategyExact), true
			}
		}
	}
	return Match{}, false
}

// keywordStrategy consults the direct answer rules of the requested subject.
type keywordStrategy struct{}

func (keywordStrategy) name() string { return StrategyKeyword }

func (keywordStrategy) match(q query, _ []*corpus.Subject) (Match, bool) {
	if q.home == nil {
		return Match{}, false
	}
	for _, rule := range q.home.Rules {
		if rule.Matches(q.normalized) {
			return Match{
				Answer:   rule.Answer,
				Subject:  q.home,
				Key:      q.home.Name + ":keyword_" + rule.Keywords[0],
				Strategy: StrategyKeyword,
				Score:    1,
			}, true
		}
	}
	return Match{}, false
}

type substringStrategy struct{}

func (substringStrategy) name() string { return StrategySubstring }

func (substringStrategy) match(q query, scope []*corpus.Subject) (Match, bool) {
	if !textnorm.HasContentWord(q.normalized) {
		return Match{}, false
	}
	for _, subj := range scope {
		for i := range subj.Pairs {
			stored := subj.NormalizedQuestion(i)
			if stored == "" {
				continue
			}
			if strings.Contains(stored, q.normalized) || strings.Contains(q.normalized, stored) {
				return pairMatch(subj, i, StrategySubstring), true
			}
		}
	}
	return Match{}, false
}

type topicKind int

const (
	topicNone topicKind = iota
	topicPerson
	topicEntity
	topicGeneral
)

// extractTopic strips a leading interrogative and returns what is asked about.
func extractTopic(normalized string) (topicKind, string) {
	for _, p := range []string{"who is ", "who was "} {
		if strings.HasPrefix(normalized, p) {
			return topicPerson, strings.TrimSpace(normalized[len(p):])
		}
	}
	for _, p := range []string{"what is ", "what are "} {
		if strings.HasPrefix(normalized, p) {
			return topicEntity, strings.TrimSpace(normalized[len(p):])
		}
	}
	for _, p := range []string{"what ", "who ", "when ", "where ", "why ", "how "} {
		if strings.HasPrefix(normalized, p) {
			return topicGeneral, strings.TrimSpace(normalized[len(p):])
		}
	}
	return topicNone, ""
}

// topicStrategy handles who/what/when/where/why/how questions by the topic
// they name. People and entities may be found in other subjects.
type topicStrategy struct {
	store *corpus.Store
}

func (topicStrategy) name() string { return StrategyTopic }

func (s topicStrategy) match(q query, scope []*corpus.Subject) (Match, bool) {
	kind, topic := extractTopic(q.normalized)
	if kind == topicNone || !textnorm.HasContentWord(topic) {
		return Match{}, false
	}

	if m, ok := topicInQuestions(topic, scope); ok {
		return m, true
	}

	switch kind {
	case topicPerson:
		for _, subj := range scope {
			for i, p := range subj.Pairs {
				answer := strings.ToLower(p.Answer)
				if textnorm.ContainsPhrase(textnorm.Normalize(answer), topic) && containsAny(answer, biographicalIndicators) {
					return pairMatch(subj, i, StrategyTopic), true
				}
			}
		}
		for _, subj := range s.others(q) {
			for i, p := range subj.Pairs {
				answer := strings.ToLower(p.Answer)
				if (textnorm.ContainsPhrase(subj.NormalizedQuestion(i), topic) ||
					textnorm.ContainsPhrase(textnorm.Normalize(answer), topic)) &&
					containsAny(answer, biographicalIndicators) {
					return pairMatch(subj, i, StrategyTopic), true
				}
			}
		}
	case topicEntity:
		if !strings.Contains(topic, " ") {
			for _, subj := range scope {
				for i, p := range subj.Pairs {
					if definesEntity(p.Answer, topic) {
						return pairMatch(subj, i, StrategyTopic), true
					}
				}
			}
		}
		for _, subj := range s.others(q) {
			for i := range subj.Pairs {
				stored := subj.NormalizedQuestion(i)
				if (strings.HasPrefix(stored, "what is") || strings.HasPrefix(stored, "what are")) &&
					textnorm.ContainsPhrase(stored, topic) {
					return pairMatch(subj, i, StrategyTopic), true
				}
			}
		}
	}
	return Match{}, false
}

// others lists every subject except the requested one. It is empty when
// the subject is unknown, since the scope already covers everything.
func (s topicStrategy) others(q query) []*corpus.Subject {
	if q.home == nil || s.store == nil {
		return nil
	}
	var out []*corpus.Subject
	for _, subj := range s.store.Subjects() {
		if subj != q.home {
			out = append(out, subj)
		}
	}
	return out
}

func topicInQuestions(topic string, scope []*corpus.Subject) (Match, bool) {
	for _, subj := range scope {
		for i := range subj.Pairs {
			if textnorm.ContainsPhrase(subj.NormalizedQuestion(i), topic) {
				return pairMatch(subj, i, StrategyTopic), true
			}
		}
	}
	return Match{}, false
}

// definesEntity reports whether answer reads like a definition of the
// single-word entity: the word early on and a definitional phrase.
func definesEntity(answer, entity string) bool {
	lower := strings.ToLower(answer)
	if !containsAny(lower, definitionalIndicators) {
		return false
	}
	words := textnorm.Words(textnorm.Normalize(answer))
	if len(words) > 10 {
		words = words[:10]
	}
	for _, w := range words {
		if w == entity {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// tfidfStrategy scores the question against the requested subject's model,
// or the global model when the subject is unknown.
type tfidfStrategy struct {
	store     *corpus.Store
	threshold float64
}

func (tfidfStrategy) name() string { return StrategyTFIDF }

func (s tfidfStrategy) match(q query, _ []*corpus.Subject) (Match, bool) {
	if q.home != nil {
		v, m := q.home.Vectorized()
		if v == nil {
			return Match{}, false
		}
		idx, score := tfidf.Best(v.Transform(q.raw), m)
		if !s.accept(idx, score) {
			return Match{}, false
		}
		out := pairMatch(q.home, idx, StrategyTFIDF)
		out.Score = score
		return out, true
	}

	v, m, refs := s.store.Global()
	if v == nil {
		return Match{}, false
	}
	idx, score := tfidf.Best(v.Transform(q.raw), m)
	if !s.accept(idx, score) {
		return Match{}, false
	}
	subj, _ := s.store.Resolve(refs[idx])
	out := pairMatch(subj, refs[idx].Pair, StrategyTFIDF)
	out.Score = score
	return out, true
}

func (s tfidfStrategy) accept(idx int, score float64) bool {
	return idx >= 0 && score > 0 && score >= s.threshold
}

// overlapStrategy scores content-word Jaccard overlap with stored questions.
type overlapStrategy struct{}

func (overlapStrategy) name() string { return StrategyOverlap }

func (overlapStrategy) match(q query, scope []*corpus.Subject) (Match, bool) {
	words := textnorm.ContentWords(q.normalized)
	if len(words) == 0 {
		return Match{}, false
	}
	qset := make(map[string]struct{}, len(words))
	for _, w := range words {
		qset[w] = struct{}{}
	}

	var (
		best      Match
		bestScore float64
		found     bool
	)
	for _, subj := range scope {
		for i := range subj.Pairs {
			sset := make(map[string]struct{})
			for _, w := range textnorm.ContentWords(subj.NormalizedQuestion(i)) {
				sset[w] = struct{}{}
			}
			shared := 0
			for w := range qset {
				if _, ok := sset[w]; ok {
					shared++
				}
			}
			score := textnorm.JaccardSets(qset, sset)
			if shared >= overlapMinShared && score > overlapMinScore && score > bestScore {
				best = Match{
					Answer:   subj.Pairs[i].Answer,
					Subject:  subj,
					Key:      subj.Name + ":generated_" + strings.Join(words, " "),
					Strategy: StrategyOverlap,
					Score:    score,
				}
				bestScore, found = score, true
			}
		}
	}
	return best, found
}
