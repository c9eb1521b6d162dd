package model

import "time"

const (
	//provider health classifications
	HEALTHY  string = "HEALTHY"
	DEGRADED        = "DEGRADED"
	DOWN            = "DOWN"
)

type ProviderHealth struct {
	Provider            string `storm:"id"`
	SuccessCount        int
	FailureCount        int
	ConsecutiveFailures int
	LastSuccessAt       *time.Time
	LastFailureAt       *time.Time
	LastError           string
	Status              string
	CheckedAt           time.Time
}
