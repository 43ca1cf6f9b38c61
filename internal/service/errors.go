package service

import "errors"

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptySubject  = errors.New("subject is required")
)
