package diagnosis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, res *Result) error {
	res.ID = uuid.New()
	symptoms, err := json.Marshal(res.Symptoms)
	if err != nil {
		return fmt.Errorf("encode symptoms: %w", err)
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO diagnosis_result (id, patient_id, symptoms, diagnosis,
			recommendations, severity_assessment, follow_up_needed, session_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		res.ID, res.PatientID, symptoms, res.Diagnosis,
		res.Recommendations, res.SeverityAssessment, res.FollowUpNeeded, res.SessionID).
		Scan(&res.CreatedAt)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Result, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM diagnosis_result WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, symptoms, diagnosis, recommendations,
			severity_assessment, follow_up_needed, session_id, created_at
		FROM diagnosis_result
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Result
	for rows.Next() {
		var res Result
		var symptoms []byte
		if err := rows.Scan(&res.ID, &res.PatientID, &symptoms, &res.Diagnosis,
			&res.Recommendations, &res.SeverityAssessment, &res.FollowUpNeeded,
			&res.SessionID, &res.CreatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(symptoms, &res.Symptoms); err != nil {
			return nil, 0, fmt.Errorf("decode symptoms: %w", err)
		}
		items = append(items, &res)
	}
	return items, total, rows.Err()
}
