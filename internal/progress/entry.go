package progress

import "time"

// Entry is a sparse progress snapshot. All measurement fields are
// optional, an absent value stays NULL and the stats reducers skip it.
type Entry struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	Date           time.Time `json:"date"`
	Weight         *float64  `json:"weight,omitempty"`
	BodyFat        *float64  `json:"bodyFat,omitempty"`
	Steps          *int      `json:"steps,omitempty"`
	ActiveMinutes  *int      `json:"activeMinutes,omitempty"`
	SleepHours     *float64  `json:"sleepHours,omitempty"`
	CaloriesBurned *int      `json:"caloriesBurned,omitempty"`
}
