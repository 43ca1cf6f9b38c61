package contract

// DefaultUser owns progress and history when no user is given.
const DefaultUser = "guest"

type AskRequest struct {
	User     string
	Subject  string
	Question string
	// Record saves history and progress after answering.
	Record bool
}

func NewAskRequest(user, subject, question string) AskRequest {
	if user == "" {
		user = DefaultUser
	}
	return AskRequest{
		User:     user,
		Subject:  subject,
		Question: question,
		Record:   true,
	}
}

type AskResponse struct {
	Answer    string
	RequestID string
	Kind      string
	Strategy  string
	// MatchedSubject is the subject whose corpus produced the answer.
	MatchedSubject string
	Score          float64
	// Recorded reports whether progress was persisted.
	Recorded bool
	Warnings []string
}
