package nutrition

import "time"

// NutritionLog carries the daily intake totals. Multiple logs can exist
// for the same day, the stats reducers sum them as they come.
type NutritionLog struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	Date           time.Time `json:"date"`
	TotalCalories  int       `json:"totalCalories"`
	TotalProtein   float64   `json:"totalProtein"`
	TotalCarbs     float64   `json:"totalCarbs"`
	TotalFats      float64   `json:"totalFats"`
	TargetCalories *int      `json:"targetCalories,omitempty"`
}
