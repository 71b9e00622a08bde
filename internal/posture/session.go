package posture

import "time"

// Session is one posture tracking session. Several sessions per day are
// normal, the daily trend averages them.
type Session struct {
	ID                   int       `json:"id"`
	UserID               int       `json:"userId"`
	Date                 time.Time `json:"date"`
	AvgScore             float64   `json:"avgScore"`
	DurationSecs         int       `json:"duration"`
	CorrectionsTriggered int       `json:"correctionsTriggered"`
}
