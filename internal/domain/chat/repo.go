package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/Srikanth-gunja/medical-diagonsis/internal/domain/patient"
)

// History and listing caps.
const (
	ContextWindow       = 10
	SessionHistoryLimit = 100
	SessionListLimit    = 50
)

type Repository interface {
	Create(ctx context.Context, msg *Message) error

	// ListRecent returns up to limit messages for a (session, patient)
	// pair, newest first.
	ListRecent(ctx context.Context, sessionID, patientID uuid.UUID, limit int) ([]*Message, error)

	// ListBySession returns a session's messages in chronological order.
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*Message, error)

	// SessionSummaries groups a patient's messages by session, most
	// recently active first.
	SessionSummaries(ctx context.Context, patientID uuid.UUID, limit int) ([]*SessionSummary, error)
}

// PatientDirectory is the slice of the patient service the chat domain needs.
type PatientDirectory interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}
