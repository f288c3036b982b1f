package hevy

// ExerciseTemplate is one entry of the Hevy exercise templates catalog.
type ExerciseTemplate struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	PrimaryMuscleGroup    string   `json:"primary_muscle_group"`
	SecondaryMuscleGroups []string `json:"secondary_muscle_groups"`
}

// ExerciseTemplatesPage is one page of the paginated templates listing.
type ExerciseTemplatesPage struct {
	Page              int                `json:"page"`
	PageCount         int                `json:"page_count"`
	ExerciseTemplates []ExerciseTemplate `json:"exercise_templates"`
}

type RoutineFolder struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// RoutineRef is the minimal view of an already published routine,
// used when listing and deleting routines in a folder.
type RoutineRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
