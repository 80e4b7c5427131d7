package payment

import "time"

type backoffStep struct {
	untilAttempt int
	interval     time.Duration
}

var backoffSchedule = []backoffStep{
	{untilAttempt: 9, interval: 3 * time.Second},
	{untilAttempt: 19, interval: 6 * time.Second},
	{untilAttempt: 29, interval: 10 * time.Second},
	{untilAttempt: 31, interval: 30 * time.Second},
}

const maxPollInterval = 60 * time.Second

// PollInterval returns the wait after the given zero-based attempt
func PollInterval(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	for _, step := range backoffSchedule {
		if attempt <= step.untilAttempt {
			return step.interval
		}
	}
	return maxPollInterval
}
