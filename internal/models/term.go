package models

import (
	"fmt"
	"time"
)

// Term models a Canvas enrollment term as embedded in a course with include[]=term.
type Term struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	StartAt              *string `json:"start_at"`
	EndAt                *string `json:"end_at"`
	WorkflowState        string  `json:"workflow_state"`
	GradingPeriodGroupID *string `json:"grading_period_group_id"`
	CreatedAt            string  `json:"created_at"`
}

// HasWindow reports whether both term boundaries are present.
func (t Term) HasWindow() bool {
	return t.StartAt != nil && *t.StartAt != "" && t.EndAt != nil && *t.EndAt != ""
}

// Window parses the term boundaries. ok is false when either boundary is absent.
func (t Term) Window() (start, end time.Time, ok bool, err error) {
	if !t.HasWindow() {
		return time.Time{}, time.Time{}, false, nil
	}
	start, err = ParseUTC(*t.StartAt)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("term %d start_at: %w", t.ID, err)
	}
	end, err = ParseUTC(*t.EndAt)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("term %d end_at: %w", t.ID, err)
	}
	return start, end, true, nil
}

// IsCurrent reports whether now falls within the term window, bounds included. A term without
// both boundaries is never current.
func (t Term) IsCurrent(now time.Time) (bool, error) {
	start, end, ok, err := t.Window()
	if err != nil || !ok {
		return false, err
	}
	return !now.Before(start) && !now.After(end), nil
}
