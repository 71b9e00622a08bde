package stats

import (
	"math"
	"sort"
	"time"

	"github.com/fittrackhq/fittrack/internal/nutrition"
	"github.com/fittrackhq/fittrack/internal/posture"
	"github.com/fittrackhq/fittrack/internal/progress"
	"github.com/fittrackhq/fittrack/internal/wearable"
	"github.com/fittrackhq/fittrack/internal/workouts"
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// SourceLogs is the full history of one user across all five source
// collections, fetched in one fan-out.
type SourceLogs struct {
	WorkoutLogs     []workouts.WorkoutLog
	NutritionLogs   []nutrition.NutritionLog
	ProgressEntries []progress.Entry
	PostureSessions []posture.Session
	WearableMetrics []wearable.Metric
}

// Analyzer folds source logs into a UserStats record. All reducers are
// pure, wall clock comes in through the injected now func so the
// streak and weekly window stay testable.
type Analyzer struct {
	now func() time.Time
}

func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithClock(time.Now)
}

func NewAnalyzerWithClock(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Reduce computes every derived field from the given source logs and
// nothing else. It never looks at a previous UserStats, so recomputes
// are idempotent and self-correct from source truth.
//
// Note on calories: wearable and workout calories are summed, manual
// progress-entry calories are not, and nutrition intake feeds no
// derived field at all. Both are tracked upstream as deliberate
// accounting choices.
func (a *Analyzer) Reduce(userID int, logs SourceLogs) *UserStats {
	totalCalories := 0
	for _, workoutLog := range logs.WorkoutLogs {
		totalCalories += workoutLog.CaloriesBurned
	}
	for _, metric := range logs.WearableMetrics {
		totalCalories += metric.CaloriesBurned
	}

	totalSteps := 0
	for _, entry := range logs.ProgressEntries {
		if entry.Steps != nil {
			totalSteps += *entry.Steps
		}
	}
	for _, metric := range logs.WearableMetrics {
		totalSteps += metric.Steps
	}

	// no sessions yet means a perfect posture score, not a zero
	avgPostureScore := 100
	if len(logs.PostureSessions) > 0 {
		scoreSum := 0.0
		for _, session := range logs.PostureSessions {
			scoreSum += session.AvgScore
		}
		avgPostureScore = int(math.Round(scoreSum / float64(len(logs.PostureSessions))))
	}

	avgHeartRate := 0
	if len(logs.WearableMetrics) > 0 {
		bpmSum := 0.0
		for _, metric := range logs.WearableMetrics {
			bpmSum += metric.AvgHeartRate
		}
		avgHeartRate = int(math.Round(bpmSum / float64(len(logs.WearableMetrics))))
	}

	return &UserStats{
		UserID:               userID,
		TotalWorkouts:        len(logs.WorkoutLogs),
		TotalCaloriesBurned:  totalCalories,
		CurrentStreak:        a.streak(logs.WorkoutLogs),
		TotalSteps:           totalSteps,
		AvgPostureScore:      avgPostureScore,
		TotalPostureSessions: len(logs.PostureSessions),
		AvgHeartRate:         avgHeartRate,
		WeeklyCalories:       a.weeklyCalories(logs.WorkoutLogs, logs.WearableMetrics),
		WeightTrend:          weightTrend(logs.ProgressEntries),
		StepsTrend:           stepsTrend(logs.ProgressEntries, logs.WearableMetrics),
		PostureTrend:         postureTrend(logs.PostureSessions),
		WorkoutTrend:         workoutTrend(logs.WorkoutLogs),
		HeartRateTrend:       heartRateTrend(logs.WearableMetrics),
		WorkoutDistribution:  workoutDistribution(logs.WorkoutLogs),
		LastRecalculated:     a.now().UTC(),
	}
}

// day truncates to the UTC calendar day, the grouping key for every
// daily reducer.
func day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// streak counts consecutive workout days walking backward from the
// most recent one. A run that did not reach today or yesterday is no
// current streak at all.
func (a *Analyzer) streak(workoutLogs []workouts.WorkoutLog) int {
	if len(workoutLogs) == 0 {
		return 0
	}

	distinctDays := make(map[time.Time]struct{})
	for _, workoutLog := range workoutLogs {
		distinctDays[day(workoutLog.CompletedAt)] = struct{}{}
	}

	sortedDays := make([]time.Time, 0, len(distinctDays))
	for d := range distinctDays {
		sortedDays = append(sortedDays, d)
	}
	sort.Slice(sortedDays, func(i, j int) bool {
		return sortedDays[i].After(sortedDays[j])
	})

	today := day(a.now())
	yesterday := today.AddDate(0, 0, -1)
	if !sortedDays[0].Equal(today) && !sortedDays[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 0; i < len(sortedDays)-1; i++ {
		if sortedDays[i].Sub(sortedDays[i+1]) == 24*time.Hour {
			streak++
		} else {
			break
		}
	}
	return streak
}

// weeklyCalories buckets this week's burned calories per weekday,
// workout and wearable calories landing in the same slot. The week
// starts on the most recent Sunday midnight. All seven slots are
// always emitted.
func (a *Analyzer) weeklyCalories(
	workoutLogs []workouts.WorkoutLog,
	wearableMetrics []wearable.Metric,
) []WeeklyCalories {
	bucket := make([]WeeklyCalories, len(weekdayNames))
	for i, dayName := range weekdayNames {
		bucket[i] = WeeklyCalories{Day: dayName}
	}

	now := a.now().UTC()
	startOfWeek := day(now).AddDate(0, 0, -int(now.Weekday()))

	for _, workoutLog := range workoutLogs {
		completedAt := workoutLog.CompletedAt.UTC()
		if !completedAt.Before(startOfWeek) {
			bucket[int(completedAt.Weekday())].Calories += workoutLog.CaloriesBurned
		}
	}
	for _, metric := range wearableMetrics {
		date := metric.Date.UTC()
		if !date.Before(startOfWeek) {
			bucket[int(date.Weekday())].Calories += metric.CaloriesBurned
		}
	}

	return bucket
}

// weightTrend is a plain projection, one point per entry with a
// weigh-in, no daily grouping.
func weightTrend(entries []progress.Entry) []WeightPoint {
	trend := make([]WeightPoint, 0)
	for _, entry := range entries {
		if entry.Weight != nil {
			trend = append(trend, WeightPoint{Date: entry.Date, Weight: *entry.Weight})
		}
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})
	return trend
}

// stepsTrend merges manual entries and wearable metrics into a single
// per-day point, values for the same day summed across both sources.
func stepsTrend(entries []progress.Entry, wearableMetrics []wearable.Metric) []StepsPoint {
	stepsPerDay := make(map[time.Time]int)
	for _, entry := range entries {
		steps := 0
		if entry.Steps != nil {
			steps = *entry.Steps
		}
		// a step-less entry still claims its day with a zero
		stepsPerDay[day(entry.Date)] += steps
	}
	for _, metric := range wearableMetrics {
		stepsPerDay[day(metric.Date)] += metric.Steps
	}

	trend := make([]StepsPoint, 0, len(stepsPerDay))
	for d, steps := range stepsPerDay {
		trend = append(trend, StepsPoint{Date: d, Steps: steps})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})
	return trend
}

// postureTrend is the rounded daily average of session scores.
func postureTrend(sessions []posture.Session) []PosturePoint {
	type daySum struct {
		sum   float64
		count int
	}
	scorePerDay := make(map[time.Time]*daySum)
	for _, session := range sessions {
		d := day(session.Date)
		if scorePerDay[d] == nil {
			scorePerDay[d] = &daySum{}
		}
		scorePerDay[d].sum += session.AvgScore
		scorePerDay[d].count++
	}

	trend := make([]PosturePoint, 0, len(scorePerDay))
	for d, s := range scorePerDay {
		trend = append(trend, PosturePoint{
			Date:  d,
			Score: int(math.Round(s.sum / float64(s.count))),
		})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})
	return trend
}

// workoutTrend is the daily sum of training minutes.
func workoutTrend(workoutLogs []workouts.WorkoutLog) []WorkoutPoint {
	minutesPerDay := make(map[time.Time]int)
	for _, workoutLog := range workoutLogs {
		minutesPerDay[day(workoutLog.CompletedAt)] += workoutLog.DurationMins
	}

	trend := make([]WorkoutPoint, 0, len(minutesPerDay))
	for d, minutes := range minutesPerDay {
		trend = append(trend, WorkoutPoint{Date: d, Duration: minutes})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})
	return trend
}

// heartRateTrend projects wearable metrics with a measured heart rate.
func heartRateTrend(wearableMetrics []wearable.Metric) []HeartRatePoint {
	trend := make([]HeartRatePoint, 0)
	for _, metric := range wearableMetrics {
		if metric.AvgHeartRate > 0 {
			trend = append(trend, HeartRatePoint{Date: metric.Date, Bpm: metric.AvgHeartRate})
		}
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})
	return trend
}

// workoutDistribution counts workouts per resolved type, unresolved
// references landing in "Other". Sorted by type name so repeated
// recomputes emit identical output.
func workoutDistribution(workoutLogs []workouts.WorkoutLog) []WorkoutTypeCount {
	counts := make(map[string]int)
	for _, workoutLog := range workoutLogs {
		workoutType := workoutLog.WorkoutType
		if workoutType == "" {
			workoutType = "Other"
		}
		counts[workoutType]++
	}

	distribution := make([]WorkoutTypeCount, 0, len(counts))
	for workoutType, count := range counts {
		distribution = append(distribution, WorkoutTypeCount{Type: workoutType, Count: count})
	}
	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Type < distribution[j].Type
	})
	return distribution
}
