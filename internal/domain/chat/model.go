package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender values stored on a chat message.
const (
	SenderPatient = "patient"
	SenderAI      = "ai"
)

// Message is one turn fragment in a chat session. Two messages are written
// per turn: the patient's message followed by the AI's reply.
type Message struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	PatientID uuid.UUID `json:"patient_id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Request is the payload for a chat turn. SessionID is optional; when absent
// a new session is minted.
type Request struct {
	PatientID uuid.UUID  `json:"patient_id"`
	Message   string     `json:"message"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
}

// Response echoes the patient's message alongside the AI reply and the
// session the turn was recorded under.
type Response struct {
	Message    string    `json:"message"`
	SessionID  uuid.UUID `json:"session_id"`
	AIResponse string    `json:"ai_response"`
}

// SessionSummary is one row of a patient's session listing.
type SessionSummary struct {
	SessionID    uuid.UUID `json:"session_id"`
	LastMessage  time.Time `json:"last_message"`
	MessageCount int       `json:"message_count"`
}
