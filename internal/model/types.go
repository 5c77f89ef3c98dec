package model

import "time"

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (t MealType) Valid() bool {
	for _, v := range MealTypes {
		if t == v {
			return true
		}
	}
	return false
}

type WorkoutType string

const (
	WorkoutPush     WorkoutType = "Push"
	WorkoutPull     WorkoutType = "Pull"
	WorkoutLegs     WorkoutType = "Legs"
	WorkoutUpper    WorkoutType = "Upper"
	WorkoutLower    WorkoutType = "Lower"
	WorkoutFullBody WorkoutType = "Full Body"
	WorkoutCardio   WorkoutType = "Cardio"
	WorkoutRest     WorkoutType = "Rest"
)

var WorkoutTypes = []WorkoutType{
	WorkoutPush, WorkoutPull, WorkoutLegs, WorkoutUpper,
	WorkoutLower, WorkoutFullBody, WorkoutCardio, WorkoutRest,
}

func (t WorkoutType) Valid() bool {
	for _, v := range WorkoutTypes {
		if t == v {
			return true
		}
	}
	return false
}

type GoalDirection string

const (
	GoalLose     GoalDirection = "lose"
	GoalMaintain GoalDirection = "maintain"
	GoalGain     GoalDirection = "gain"
)

func (g GoalDirection) Valid() bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

type Meal struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Type      MealType  `json:"type"`
	FoodName  string    `json:"foodName"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	CreatedAt time.Time `json:"createdAt"`
}

// Exercise lives inside a Workout and is never persisted on its own.
// Reps and Weights are canonically per-set lists; documents that stored a
// single scalar decode to a one-element list.
type Exercise struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Sets    int       `json:"sets"`
	Reps    IntList   `json:"reps"`
	Weights FloatList `json:"weights,omitempty"`
	Notes   string    `json:"notes,omitempty"`
}

type Workout struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Type      WorkoutType `json:"type"`
	Exercises []Exercise  `json:"exercises"`
	Duration  int         `json:"duration"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type BodyStat struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Weight    *float64  `json:"weight,omitempty"`
	BodyFat   *float64  `json:"bodyFat,omitempty"`
	Muscle    *float64  `json:"muscle,omitempty"`
	Waist     *float64  `json:"waist,omitempty"`
	Chest     *float64  `json:"chest,omitempty"`
	Arms      *float64  `json:"arms,omitempty"`
	Thighs    *float64  `json:"thighs,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	PhotoPath string    `json:"photoPath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserGoals struct {
	DailyCalories float64       `json:"dailyCalories"`
	DailyProtein  float64       `json:"dailyProtein"`
	DailyCarbs    float64       `json:"dailyCarbs"`
	DailyFat      float64       `json:"dailyFat"`
	TargetWeight  *float64      `json:"targetWeight,omitempty"`
	ActivityLevel float64       `json:"activityLevel"`
	Goal          GoalDirection `json:"goal"`
}

const (
	ActivitySedentary        = 1.2
	ActivityLightlyActive    = 1.375
	ActivityModeratelyActive = 1.55
	ActivityVeryActive       = 1.725
	ActivityExtremelyActive  = 1.9
)
