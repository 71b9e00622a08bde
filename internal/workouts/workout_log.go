package workouts

import "time"

// WorkoutLog is one completed workout session, immutable after creation.
type WorkoutLog struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	WorkoutID      *int      `json:"workoutId,omitempty"`
	WorkoutType    string    `json:"workoutType,omitempty"`
	CompletedAt    time.Time `json:"completedAt"`
	DurationMins   int       `json:"durationMins"`
	CaloriesBurned int       `json:"caloriesBurned"`
}
