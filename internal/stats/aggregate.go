package stats

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/catalog"
)

// ErrNoData means no sets fall into the aggregation window.
// The caller skips the aggregated summary and continues with raw data only.
var ErrNoData = errors.New("no sets in aggregation window")

// MuscleGroupStats is the per muscle group aggregate over the window.
// Sets whose exercise has no catalog match land in the "" group.
type MuscleGroupStats struct {
	MuscleGroup string
	Max1RM      float64
	TotalVolume float64
	TotalSets   int
}

// ExercisePR is the best lift of one exercise over the window. Weight and
// reps belong to the record that produced the best estimated 1RM, MaxReps
// is the highest rep count observed in any set of that exercise.
type ExercisePR struct {
	Exercise     string
	Estimated1RM float64
	Weight       float64
	Reps         float64
	MaxReps      float64
	MuscleGroup  string
}

type Summary struct {
	DateRange     string
	TotalWorkouts int
	MuscleGroups  []MuscleGroupStats
	ExercisePRs   []ExercisePR
}

// EstimatedOneRepMax calculates the estimated 1RM using the Epley formula:
// 1RM = weight * (1 + reps/30). Zero weight or zero reps short-circuit to 0.
func EstimatedOneRepMax(weight, reps float64) float64 {
	if weight == 0 || reps == 0 {
		return 0
	}
	return weight * (1 + reps/30)
}

// Aggregate summarizes the sets of the last months*30 days (inclusive lower
// bound), joined against the exercise catalog on trimmed exact title match.
// Returns ErrNoData when the window holds no sets.
func Aggregate(sets []Set, entries []catalog.Entry, months int, now time.Time) (*Summary, error) {
	windowStart := now.Add(-time.Duration(months) * 30 * 24 * time.Hour)

	var recent []Set
	for _, set := range sets {
		if !set.Date.Before(windowStart) {
			recent = append(recent, set)
		}
	}
	if len(recent) == 0 {
		return nil, ErrNoData
	}

	title2muscleGroup := make(map[string]string, len(entries))
	for _, entry := range entries {
		title2muscleGroup[strings.TrimSpace(entry.Title)] = entry.PrimaryMuscleGroup
	}

	type groupAgg struct {
		max1RM      float64
		totalVolume float64
		totalSets   int
	}
	group2agg := make(map[string]*groupAgg)

	type exerciseAgg struct {
		best1RM     float64
		bestWeight  float64
		bestReps    float64
		maxReps     float64
		muscleGroup string
	}
	exercise2agg := make(map[string]*exerciseAgg)
	var exerciseOrder []string

	minDate, maxDate := recent[0].Date, recent[0].Date
	workoutDates := make(map[string]struct{})

	for _, set := range recent {
		if set.Date.Before(minDate) {
			minDate = set.Date
		}
		if set.Date.After(maxDate) {
			maxDate = set.Date
		}
		workoutDates[set.Date.Format("2006-01-02")] = struct{}{}

		oneRepMax := EstimatedOneRepMax(set.Weight, set.Reps)
		volume := set.Weight * set.Reps

		// unmatched exercises stay in, under the "" muscle group
		muscleGroup := title2muscleGroup[strings.TrimSpace(set.Exercise)]

		group, ok := group2agg[muscleGroup]
		if !ok {
			group = &groupAgg{}
			group2agg[muscleGroup] = group
		}
		if oneRepMax > group.max1RM {
			group.max1RM = oneRepMax
		}
		group.totalVolume += volume
		group.totalSets++

		exercise, ok := exercise2agg[set.Exercise]
		if !ok {
			exercise = &exerciseAgg{muscleGroup: muscleGroup}
			exercise2agg[set.Exercise] = exercise
			exerciseOrder = append(exerciseOrder, set.Exercise)
		}
		if oneRepMax > exercise.best1RM {
			exercise.best1RM = oneRepMax
			exercise.bestWeight = set.Weight
			exercise.bestReps = set.Reps
		}
		if set.Reps > exercise.maxReps {
			exercise.maxReps = set.Reps
		}
	}

	muscleGroups := make([]MuscleGroupStats, 0, len(group2agg))
	for muscleGroup, agg := range group2agg {
		muscleGroups = append(muscleGroups, MuscleGroupStats{
			MuscleGroup: muscleGroup,
			Max1RM:      round2(agg.max1RM),
			TotalVolume: round2(agg.totalVolume),
			TotalSets:   agg.totalSets,
		})
	}
	sort.Slice(muscleGroups, func(i, j int) bool {
		return muscleGroups[i].MuscleGroup < muscleGroups[j].MuscleGroup
	})

	exercisePRs := make([]ExercisePR, 0, len(exerciseOrder))
	for _, exerciseName := range exerciseOrder {
		agg := exercise2agg[exerciseName]
		exercisePRs = append(exercisePRs, ExercisePR{
			Exercise:     exerciseName,
			Estimated1RM: round2(agg.best1RM),
			Weight:       agg.bestWeight,
			Reps:         agg.bestReps,
			MaxReps:      agg.maxReps,
			MuscleGroup:  agg.muscleGroup,
		})
	}
	// ties keep the first-seen exercise order
	sort.SliceStable(exercisePRs, func(i, j int) bool {
		return exercisePRs[i].Estimated1RM > exercisePRs[j].Estimated1RM
	})

	return &Summary{
		DateRange:     minDate.Format("2006-01-02") + " to " + maxDate.Format("2006-01-02"),
		TotalWorkouts: len(workoutDates),
		MuscleGroups:  muscleGroups,
		ExercisePRs:   exercisePRs,
	}, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
