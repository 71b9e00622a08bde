package wearable

import "time"

const SourceGoogleFit = "google_fit"

// Metric is one day of wearable data for one user. A (user, date) pair
// is unique, re-syncs overwrite the day in place.
type Metric struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	Date           time.Time `json:"date"`
	Steps          int       `json:"steps"`
	AvgHeartRate   float64   `json:"avgHeartRate"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Source         string    `json:"source"`
	LastSyncedAt   time.Time `json:"lastSyncedAt"`
}
