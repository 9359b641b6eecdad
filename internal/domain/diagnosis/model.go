package diagnosis

import (
	"time"

	"github.com/google/uuid"
)

// Symptom is a value object embedded in a Result. It is never stored
// standalone.
type Symptom struct {
	Description string  `json:"description"`
	Severity    int     `json:"severity"` // 1-10 inclusive
	Duration    string  `json:"duration"`
	Location    *string `json:"location,omitempty"`
}

// Result maps to the diagnosis_result table. Results are append-only: one
// record per diagnosis request, never mutated, each with its own freshly
// minted session id.
type Result struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PatientID          uuid.UUID `db:"patient_id" json:"patient_id"`
	Symptoms           []Symptom `db:"symptoms" json:"symptoms"`
	Diagnosis          string    `db:"diagnosis" json:"diagnosis"`
	Recommendations    []string  `db:"recommendations" json:"recommendations"`
	SeverityAssessment string    `db:"severity_assessment" json:"severity_assessment"`
	FollowUpNeeded     bool      `db:"follow_up_needed" json:"follow_up_needed"`
	SessionID          uuid.UUID `db:"session_id" json:"session_id"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// Request is the payload accepted by the diagnosis endpoint.
type Request struct {
	PatientID      uuid.UUID `json:"patient_id"`
	Symptoms       []Symptom `json:"symptoms"`
	AdditionalInfo *string   `json:"additional_info,omitempty"`
}
