package router

import (
	"context"
	"errors"
	"testing"
)

// stubClassifier returns a fixed label or error.
type stubClassifier struct {
	label string
	err   error

	gotInstruction string
	gotLabels      []string
}

func (s *stubClassifier) Classify(_ context.Context, instruction, _ string, labels []string) (string, error) {
	s.gotInstruction = instruction
	s.gotLabels = labels
	return s.label, s.err
}

func TestRouteValidLabels(t *testing.T) {
	for _, label := range []string{DestRecommendation, DestProductInfo} {
		t.Run(label, func(t *testing.T) {
			stub := &stubClassifier{label: label}
			r := New(stub)

			got, err := r.Route(context.Background(), "what should we buy")
			if err != nil {
				t.Fatalf("Route() error: %v", err)
			}
			if got != label {
				t.Errorf("Route() = %q, want %q", got, label)
			}
			if len(stub.gotLabels) != 2 {
				t.Errorf("labels passed to classifier = %v, want both destinations", stub.gotLabels)
			}
			if stub.gotInstruction == "" {
				t.Error("router must supply its instruction")
			}
		})
	}
}

func TestRouteUnknownLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"other string", "chitchat"},
		{"empty string", ""},
		{"case mismatch", "Recommendation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&stubClassifier{label: tt.label})

			_, err := r.Route(context.Background(), "anything")
			if !errors.Is(err, ErrUnknownDestination) {
				t.Fatalf("error = %v, want ErrUnknownDestination", err)
			}
		})
	}
}

func TestRouteClassifierFailure(t *testing.T) {
	boom := errors.New("upstream down")
	r := New(&stubClassifier{err: boom})

	_, err := r.Route(context.Background(), "anything")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped upstream error", err)
	}
}
