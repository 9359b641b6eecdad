package diagnosis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler(gen *fakeGenerator) (*Handler, *echo.Echo, uuid.UUID) {
	p := testPatient()
	svc := NewService(&mockRepo{}, newMockPatients(p), gen)
	h := NewHandler(svc)
	e := echo.New()
	return h, e, p.ID
}

func TestHandler_Diagnose(t *testing.T) {
	gen := &fakeGenerator{reply: "RECOMMENDATIONS:\nRest at home\nSEVERITY ASSESSMENT:\nHigh\nFOLLOW-UP:\nYes"}
	h, e, patientID := newTestHandler(gen)

	body := `{"patient_id":"` + patientID.String() + `","symptoms":[{"description":"Cough","severity":4,"duration":"3 days"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Diagnose(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.SeverityAssessment != SeverityHigh {
		t.Errorf("expected severity High, got %q", res.SeverityAssessment)
	}
	if res.SessionID == uuid.Nil {
		t.Error("expected session id in response")
	}
}

func TestHandler_Diagnose_UnknownPatient(t *testing.T) {
	h, e, _ := newTestHandler(&fakeGenerator{reply: "anything"})

	body := `{"patient_id":"` + uuid.New().String() + `","symptoms":[{"description":"Cough","severity":4,"duration":"3 days"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Diagnose(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", he.Code)
	}
	if he.Message != "Patient not found" {
		t.Errorf("unexpected detail: %v", he.Message)
	}
}

func TestHandler_Diagnose_InvalidSeverity(t *testing.T) {
	h, e, patientID := newTestHandler(&fakeGenerator{reply: "anything"})

	body := `{"patient_id":"` + patientID.String() + `","symptoms":[{"description":"Cough","severity":11,"duration":"3 days"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Diagnose(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", he.Code)
	}
}

func TestHandler_ListByPatient(t *testing.T) {
	h, e, patientID := newTestHandler(&fakeGenerator{reply: "anything"})
	h.svc.Diagnose(nil, validRequest(patientID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(patientID.String())

	if err := h.ListByPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
