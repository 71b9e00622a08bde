package stats

import "time"

// UserStats is the materialized statistics record one dashboard load
// reads. It is derived wholesale from the source logs on every
// recompute and never patched in place.
type UserStats struct {
	UserID               int                `json:"userId"`
	TotalWorkouts        int                `json:"totalWorkouts"`
	TotalCaloriesBurned  int                `json:"totalCaloriesBurned"`
	CurrentStreak        int                `json:"currentStreak"`
	TotalSteps           int                `json:"totalSteps"`
	AvgPostureScore      int                `json:"avgPostureScore"`
	TotalPostureSessions int                `json:"totalPostureSessions"`
	AvgHeartRate         int                `json:"avgHeartRate"`
	WeeklyCalories       []WeeklyCalories   `json:"weeklyCalories"`
	WeightTrend          []WeightPoint      `json:"weightTrend"`
	StepsTrend           []StepsPoint       `json:"stepsTrend"`
	PostureTrend         []PosturePoint     `json:"postureTrend"`
	WorkoutTrend         []WorkoutPoint     `json:"workoutTrend"`
	HeartRateTrend       []HeartRatePoint   `json:"heartRateTrend"`
	WorkoutDistribution  []WorkoutTypeCount `json:"workoutDistribution"`
	LastRecalculated     time.Time          `json:"lastRecalculated"`
	AiInsightCache       *InsightCache      `json:"aiInsightCache,omitempty"`
}

// WeeklyCalories is one slot of the fixed Sun..Sat bar chart bucket.
type WeeklyCalories struct {
	Day      string `json:"day"`
	Calories int    `json:"calories"`
}

type WeightPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

type StepsPoint struct {
	Date  time.Time `json:"date"`
	Steps int       `json:"steps"`
}

type PosturePoint struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

type WorkoutPoint struct {
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
}

type HeartRatePoint struct {
	Date time.Time `json:"date"`
	Bpm  float64   `json:"bpm"`
}

type WorkoutTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// InsightCache lives inside UserStats on purpose: a recompute replaces
// the whole record and with it the cache, so stale insights never
// outlive the stats they were generated from.
type InsightCache struct {
	Insights  []string  `json:"insights"`
	Timestamp time.Time `json:"timestamp"`
}
