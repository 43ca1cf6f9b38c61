package arith

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxExpressionLen is the longest sanitized expression that will be evaluated.
const MaxExpressionLen = 100

const (
	msgTooLong = "That expression is too long to calculate safely."
	msgInvalid = "I couldn't evaluate that expression. Please check the format and try again."
)

// wordOperators maps spoken operators to symbols. Multi-word phrases come
// first so "added to" is not split by "add".
var wordOperators = []struct {
	word, symbol string
}{
	{"multiplied by", "*"},
	{"divided by", "/"},
	{"added to", "+"},
	{"take away", "-"},
	{"plus", "+"},
	{"add", "+"},
	{"minus", "-"},
	{"subtract", "-"},
	{"times", "*"},
	{"multiply", "*"},
	{"divide", "/"},
}

var requestPrefixes = []string{
	"what is", "what's", "whats", "calculate", "compute", "solve", "find", "=",
}

var (
	// numericOp spots a number, an operator and a number in free text.
	numericOp = regexp.MustCompile(`\d+\s*[+\-*/]\s*\d+`)
	// sanitizedOp is the same check after spaces are gone; it tolerates
	// parentheses and a unary minus around the operator.
	sanitizedOp = regexp.MustCompile(`\d\)*[+\-*/][(\-]*[\d.]`)
	disallowed  = regexp.MustCompile(`[^0-9+\-*/().]`)
)

// TryArithmetic reports whether question is an arithmetic request and, if
// so, returns the sentence to answer it with. Malformed expressions still
// count as handled and get a polite message.
func TryArithmetic(question string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, op := range wordOperators {
		q = strings.ReplaceAll(q, op.word, op.symbol)
	}

	expr, ok := candidateExpression(q)
	if !ok {
		return "", false
	}

	expr = disallowed.ReplaceAllString(expr, "")
	if !sanitizedOp.MatchString(expr) {
		return "", false
	}
	if len(expr) > MaxExpressionLen {
		return msgTooLong, true
	}

	result, err := Eval(expr)
	if err != nil || math.IsInf(result, 0) || math.IsNaN(result) {
		return msgInvalid, true
	}
	return FormatResult(result), true
}

func candidateExpression(q string) (string, bool) {
	for _, prefix := range requestPrefixes {
		if strings.HasPrefix(q, prefix) {
			return strings.TrimSpace(q[len(prefix):]), true
		}
	}
	if numericOp.MatchString(q) {
		return q, true
	}
	return "", false
}

// FormatResult renders whole numbers exactly and everything else to four
// decimal places.
func FormatResult(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return "The answer is " + strconv.FormatFloat(v, 'f', -1, 64) + "."
	}
	return "The answer is approximately " + strconv.FormatFloat(v, 'f', 4, 64) + "."
}
