package entities

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		title   string
		want    string
		wantErr bool
	}{
		{"plain", "Buy milk", "Buy milk", false},
		{"trimmed", "  Buy milk \t", "Buy milk", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"max length", strings.Repeat("x", MaxTitleLength), strings.Repeat("x", MaxTitleLength), false},
		{"too long", strings.Repeat("x", MaxTitleLength+1), "", true},
		// Length bounds count characters, so a multibyte title whose byte
		// length exceeds the limit is still accepted.
		{"multibyte", strings.Repeat("б", 150), strings.Repeat("б", 150), false},
		{"multibyte max length", strings.Repeat("б", MaxTitleLength), strings.Repeat("б", MaxTitleLength), false},
		{"multibyte too long", strings.Repeat("б", MaxTitleLength+1), "", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateTitle(tc.title)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if _, ok := AsValidationError(err); !ok {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()

	if err := ValidateDescription(strings.Repeat("x", MaxDescriptionLength)); err != nil {
		t.Errorf("unexpected error at max length: %v", err)
	}
	if err := ValidateDescription(strings.Repeat("x", MaxDescriptionLength+1)); err == nil {
		t.Error("expected error past max length")
	}
	if err := ValidateDescription(strings.Repeat("ü", MaxDescriptionLength)); err != nil {
		t.Errorf("unexpected error for multibyte description at max length: %v", err)
	}
	if err := ValidateDescription(strings.Repeat("ü", MaxDescriptionLength+1)); err == nil {
		t.Error("expected error for multibyte description past max length")
	}
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	for _, status := range []TaskStatus{TaskStatusActive, TaskStatusCompleted, TaskStatusPending} {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if TaskStatus("archived").IsValid() {
		t.Error("expected archived to be invalid")
	}

	for _, priority := range []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh} {
		if !priority.IsValid() {
			t.Errorf("expected %q to be valid", priority)
		}
	}
	if TaskPriority("urgent").IsValid() {
		t.Error("expected urgent to be invalid")
	}
}
