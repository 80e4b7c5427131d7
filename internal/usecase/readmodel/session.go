package readmodel

import "time"

type SessionRM struct {
	Token     string
	UserID    string
	ExpiresIn time.Duration
}
