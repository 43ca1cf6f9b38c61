package tutor

import (
	"fmt"
	"strings"
)

var subjectFallbacks = map[string][]string{
	"mathematics": {
		"I don't have specific information about that mathematical concept. Mathematics includes various branches like algebra, calculus, geometry, and statistics, each with their own principles and applications.",
		"That's an interesting mathematical question. Mathematics is a field that studies numbers, quantities, shapes, patterns, and logical reasoning.",
		"I don't have specific information about that mathematical concept. Please try asking about the Pythagorean theorem, quadratic equations, matrices, calculus, algebra, equations, trigonometry, or geometry.",
	},
	"science": {
		"I don't have detailed information about that scientific concept. Science encompasses fields like physics, chemistry, biology, and more, each studying different aspects of the natural world.",
		"That's an interesting scientific question. Science is the systematic study of the structure and behavior of the physical and natural world through observation and experiment.",
		"I don't have specific information about that scientific concept. Please try asking about photosynthesis, states of matter, the scientific method, cellular respiration, biology, chemistry, physics, or ecology.",
	},
	"history": {
		"I don't have specific information about that historical event or figure. History records and analyzes past events, particularly human activities and their impacts on society and civilization.",
		"That's an interesting historical question. History helps us understand our past, which shapes our present and influences our future.",
		"I don't have specific information about that historical topic. Please try asking about Albert Einstein, World War II, Rana Pratap Singh, the Renaissance, the Industrial Revolution, Mahatma Gandhi, the Cold War, or the Crusades.",
	},
	"programming": {
		"I don't have specific details about that programming concept. Programming involves creating instructions for computers to follow, using various languages and paradigms.",
		"That's an interesting programming question. Programming is the process of creating sets of instructions that tell a computer how to perform specific tasks.",
		"I don't have specific information about that programming concept. Please try asking about variables, object-oriented programming, functions, data structures, Python, algorithms, debugging, or databases.",
	},
}

var genericFallbacks = []string{
	"I don't have specific information about that in %s. Can you ask something else or try rephrasing your question?",
	"I'm not sure about that specific topic in %s. Could you provide more context or ask about a related concept?",
	"That's an interesting question about %s, but I don't have enough information to provide a complete answer. Can I help with something else?",
}

// FallbackGenerator produces a polite reply when nothing in the corpus
// matches.
type FallbackGenerator struct {
	chooser Chooser
}

// NewFallbackGenerator returns a generator choosing with chooser.
func NewFallbackGenerator(chooser Chooser) *FallbackGenerator {
	if chooser == nil {
		chooser = randomChooser{}
	}
	return &FallbackGenerator{chooser: chooser}
}

// Generate returns a fallback for subject. Known subjects draw from their
// own list; anything else gets a generic reply naming the subject.
func (f *FallbackGenerator) Generate(subject string) string {
	key := strings.ToLower(strings.TrimSpace(subject))
	if options, ok := subjectFallbacks[key]; ok {
		return pick(f.chooser, options)
	}
	return fmt.Sprintf(pick(f.chooser, genericFallbacks), subjectLabel(subject))
}

// Candidates lists every reply Generate may return for subject.
func (f *FallbackGenerator) Candidates(subject string) []string {
	key := strings.ToLower(strings.TrimSpace(subject))
	if options, ok := subjectFallbacks[key]; ok {
		return append([]string(nil), options...)
	}
	out := make([]string, len(genericFallbacks))
	for i, tmpl := range genericFallbacks {
		out[i] = fmt.Sprintf(tmpl, subjectLabel(subject))
	}
	return out
}

func subjectLabel(subject string) string {
	if s := strings.TrimSpace(subject); s != "" {
		return s
	}
	return "this subject"
}
