package models

import "time"

// ReviewRecord is the persisted behavioral record behind the review prompt
// gate. The JSON field names are a storage format contract; records written
// by older app versions must keep decoding.
type ReviewRecord struct {
	ActionCount     int        `json:"actionCount"`
	LastPromptDate  *time.Time `json:"lastPromptDate,omitempty"`
	FirstLaunchDate *time.Time `json:"firstLaunchDate,omitempty"`
	HasReviewed     bool       `json:"hasReviewed"`
}
