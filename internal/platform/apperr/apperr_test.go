package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidation(t *testing.T) {
	err := Validation("severity must be between %d and %d", 1, 10)
	if err.Error() != "severity must be between 1 and 10" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !IsValidation(err) {
		t.Error("expected IsValidation true")
	}
}

func TestIsValidation_Wrapped(t *testing.T) {
	err := fmt.Errorf("create patient: %w", Validation("name is required"))
	if !IsValidation(err) {
		t.Error("expected IsValidation to see through wrapping")
	}
}

func TestIsValidation_OtherError(t *testing.T) {
	if IsValidation(errors.New("boom")) {
		t.Error("expected IsValidation false for plain error")
	}
	if IsValidation(nil) {
		t.Error("expected IsValidation false for nil")
	}
}
