package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const messageCols = "id, session_id, patient_id, message, sender, timestamp"

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func scanMessages(rows pgx.Rows) ([]*Message, error) {
	defer rows.Close()
	var items []*Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.PatientID,
			&msg.Message, &msg.Sender, &msg.Timestamp); err != nil {
			return nil, err
		}
		items = append(items, &msg)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, msg *Message) error {
	msg.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO chat_message (id, session_id, patient_id, message, sender)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING timestamp`,
		msg.ID, msg.SessionID, msg.PatientID, msg.Message, msg.Sender).
		Scan(&msg.Timestamp)
}

func (r *repoPG) ListRecent(ctx context.Context, sessionID, patientID uuid.UUID, limit int) ([]*Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageCols+`
		FROM chat_message
		WHERE session_id = $1 AND patient_id = $2
		ORDER BY timestamp DESC
		LIMIT $3`, sessionID, patientID, limit)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

func (r *repoPG) ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageCols+`
		FROM chat_message
		WHERE session_id = $1
		ORDER BY timestamp ASC
		LIMIT $2`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

func (r *repoPG) SessionSummaries(ctx context.Context, patientID uuid.UUID, limit int) ([]*SessionSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT session_id, MAX(timestamp) AS last_message, COUNT(*) AS message_count
		FROM chat_message
		WHERE patient_id = $1
		GROUP BY session_id
		ORDER BY last_message DESC
		LIMIT $2`, patientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.SessionID, &s.LastMessage, &s.MessageCount); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
