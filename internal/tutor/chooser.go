package tutor

import "math/rand/v2"

// Chooser picks an index in [0, n). Fallback and repetition phrasing go
// through it so tests can pin the choice.
type Chooser interface {
	Intn(n int) int
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(n int) int

func (f ChooserFunc) Intn(n int) int { return f(n) }

type randomChooser struct{}

func (randomChooser) Intn(n int) int { return rand.IntN(n) }

func pick(c Chooser, options []string) string {
	if len(options) == 0 {
		return ""
	}
	i := c.Intn(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}
