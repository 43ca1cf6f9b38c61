package tutor

import "github.com/alexanderramin/tutor/internal/textnorm"

const (
	alternativePrefix    = "Another perspective on this: "
	alternativeThreshold = 0.3
)

var variationPrefixes = []string{
	"As I mentioned earlier, ",
	"To reiterate, ",
	"Just to confirm what I said before, ",
	"To expand on my previous answer, ",
}

// RepetitionGuard remembers the last answer given per match key and varies
// an answer that would be repeated verbatim. The ledger grows for the life
// of the guard.
type RepetitionGuard struct {
	ledger  map[string]string
	chooser Chooser
}

// NewRepetitionGuard returns an empty guard.
func NewRepetitionGuard(chooser Chooser) *RepetitionGuard {
	if chooser == nil {
		chooser = randomChooser{}
	}
	return &RepetitionGuard{ledger: make(map[string]string), chooser: chooser}
}

// Apply returns the text to send for m. A first use of a key records the
// answer and returns it unchanged; a repeat is replaced with a similar
// answer from the same subject, or prefixed with a transition phrase.
func (g *RepetitionGuard) Apply(m Match) string {
	prev, seen := g.ledger[m.Key]
	if !seen || prev != m.Answer {
		g.ledger[m.Key] = m.Answer
		return m.Answer
	}
	if alt, ok := g.alternative(m); ok {
		return alternativePrefix + alt
	}
	return pick(g.chooser, variationPrefixes) + m.Answer
}

// Len is the number of remembered keys.
func (g *RepetitionGuard) Len() int { return len(g.ledger) }

func (g *RepetitionGuard) alternative(m Match) (string, bool) {
	if m.Subject == nil {
		return "", false
	}
	target := textnorm.WordSet(m.Answer)
	for _, p := range m.Subject.Pairs {
		if p.Answer == m.Answer {
			continue
		}
		if textnorm.JaccardSets(target, textnorm.WordSet(p.Answer)) > alternativeThreshold {
			return p.Answer, true
		}
	}
	return "", false
}
