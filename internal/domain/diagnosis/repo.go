package diagnosis

import (
	"context"

	"github.com/google/uuid"

	"github.com/Srikanth-gunja/medical-diagonsis/internal/domain/patient"
)

type Repository interface {
	Create(ctx context.Context, res *Result) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Result, int, error)
}

// PatientDirectory is the slice of the patient service the diagnosis domain
// needs: a snapshot of demographics and history for prompt construction.
type PatientDirectory interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}
