package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctor table. Like patients, records are immutable
// after creation.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Specialty string    `db:"specialty" json:"specialty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateRequest is the payload accepted by the create endpoint.
type CreateRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
