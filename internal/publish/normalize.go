package publish

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNoRoutines means the generated plan held no recognizable routines.
// The publish is reported as empty, not aborted.
var ErrNoRoutines = errors.New("no routines found in generated plan")

// Routine is one generated workout routine, kept as the raw payload the
// generation service produced.
type Routine map[string]any

func (r Routine) Title() string {
	title, _ := r["title"].(string)
	return title
}

// NormalizeRoutines reduces the three accepted plan shapes to one ordered
// routine list:
//
//	{"routines": [R, ...]}
//	[{"routine": R}, ...]
//	[R, ...]
//
// Null array elements carry no routine and are dropped. Anything else,
// including a plan where every element is null, yields ErrNoRoutines.
func NormalizeRoutines(raw json.RawMessage) ([]Routine, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrNoRoutines
	}

	switch trimmed[0] {
	case '{':
		var wrapped struct {
			Routines []Routine `json:"routines"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, ErrNoRoutines
		}
		return unwrapRoutines(wrapped.Routines)
	case '[':
		var items []Routine
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, ErrNoRoutines
		}
		return unwrapRoutines(items)
	default:
		return nil, ErrNoRoutines
	}
}

func unwrapRoutines(items []Routine) ([]Routine, error) {
	routines := make([]Routine, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if inner, ok := item["routine"].(map[string]any); ok {
			routines = append(routines, Routine(inner))
		} else {
			routines = append(routines, item)
		}
	}
	if len(routines) == 0 {
		return nil, ErrNoRoutines
	}
	return routines, nil
}
