package plangen

import (
	"fmt"
	"strings"

	"github.com/2beens/gymplan/internal/catalog"
	"github.com/2beens/gymplan/internal/stats"
)

const (
	catalogSampleSize = 400
	recentSetsSample  = 30
	topExercisePRs    = 15
)

// PromptData holds everything that goes into a single generation request.
// Template is the monthly instruction text, treated as opaque. Summary is
// nil when aggregation was skipped (no catalog or no data in window).
type PromptData struct {
	Template   string
	Catalog    []catalog.Entry
	RecentSets []stats.Set
	Summary    *stats.Summary
	Months     int
}

// BuildPrompt concatenates the instruction template with a bounded sample of
// the exercise catalog, the most recent raw sets and, when available, the
// aggregated performance summary.
func BuildPrompt(data PromptData) string {
	var sb strings.Builder
	sb.WriteString(data.Template)

	if len(data.Catalog) > 0 {
		sb.WriteString("\nAVAILABLE EXERCISE IDs (Sample):\n")
		sample := data.Catalog
		if len(sample) > catalogSampleSize {
			sample = sample[:catalogSampleSize]
		}
		for _, entry := range sample {
			fmt.Fprintf(&sb, "%s  %s\n", entry.ID, entry.Title)
		}
	}

	if len(data.RecentSets) > 0 {
		recent := data.RecentSets
		if len(recent) > recentSetsSample {
			recent = recent[len(recent)-recentSetsSample:]
		}
		fmt.Fprintf(&sb, "\nRECENT WORKOUT DATA (Last %d sets):\n", len(recent))
		for _, set := range recent {
			fmt.Fprintf(&sb, "%s  %s  %.2f x %.0f\n",
				set.Date.Format("2006-01-02"), set.Exercise, set.Weight, set.Reps)
		}
	}

	if data.Summary != nil {
		fmt.Fprintf(&sb, "\n=== %d-MONTH PERFORMANCE SUMMARY ===\n", data.Months)
		fmt.Fprintf(&sb, "Period: %s\n", data.Summary.DateRange)
		fmt.Fprintf(&sb, "Total Workouts: %d\n\n", data.Summary.TotalWorkouts)

		sb.WriteString("MUSCLE GROUP ANALYSIS:\n")
		sb.WriteString("muscle_group | max_1rm | total_volume | total_sets\n")
		for _, group := range data.Summary.MuscleGroups {
			fmt.Fprintf(&sb, "%s | %.2f | %.2f | %d\n",
				muscleGroupLabel(group.MuscleGroup), group.Max1RM, group.TotalVolume, group.TotalSets)
		}

		fmt.Fprintf(&sb, "\nTOP %d EXERCISE PRs (by Estimated 1RM):\n", topExercisePRs)
		sb.WriteString("exercise | estimated_1rm | weight | max_reps | muscle_group\n")
		prs := data.Summary.ExercisePRs
		if len(prs) > topExercisePRs {
			prs = prs[:topExercisePRs]
		}
		for _, pr := range prs {
			fmt.Fprintf(&sb, "%s | %.2f | %.2f | %.0f | %s\n",
				pr.Exercise, pr.Estimated1RM, pr.Weight, pr.MaxReps, muscleGroupLabel(pr.MuscleGroup))
		}
	}

	return sb.String()
}

func muscleGroupLabel(muscleGroup string) string {
	if muscleGroup == "" {
		return "(none)"
	}
	return muscleGroup
}
