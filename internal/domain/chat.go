package domain

import "time"

// ChatEntry is one question and the answer given to it.
type ChatEntry struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Subject   string    `json:"subject"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}
