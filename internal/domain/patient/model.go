package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Records are immutable after creation:
// there is no update endpoint.
type Patient struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Age            int       `db:"age" json:"age"`
	Gender         string    `db:"gender" json:"gender"`
	Email          string    `db:"email" json:"email"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	MedicalHistory []string  `db:"medical_history" json:"medical_history"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// CreateRequest is the payload accepted by the create endpoint.
type CreateRequest struct {
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	Email          string   `json:"email"`
	Phone          *string  `json:"phone,omitempty"`
	MedicalHistory []string `json:"medical_history"`
}
