package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidate(t *testing.T) {
	valid := Message{Name: "Anna", Email: "anna@example.com", Body: "How long is a class for 4 year olds?"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	tests := []struct {
		name string
		msg  Message
	}{
		{"missing name", Message{Name: " ", Email: "a@b.co", Body: "hi"}},
		{"missing email", Message{Name: "a", Body: "hi"}},
		{"missing body", Message{Name: "a", Email: "a@b.co"}},
		{"bad email", Message{Name: "a", Email: "not-an-email", Body: "hi"}},
		{"display name email", Message{Name: "a", Email: "Anna <anna@example.com>", Body: "hi"}},
		{"long body", Message{Name: "a", Email: "a@b.co", Body: strings.Repeat("x", maxBodyLen+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.msg.Validate(); !errors.Is(err, ErrInvalidMessage) {
				t.Errorf("expected ErrInvalidMessage, got %v", err)
			}
		})
	}
}

func TestSubmitAcknowledges(t *testing.T) {
	desk := NewDesk(10)
	ack, err := desk.Submit(context.Background(), Message{Name: " Anna ", Email: "anna@example.com ", Body: "hello"})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := uuid.Parse(ack.ID); err != nil {
		t.Errorf("ack id %q is not a uuid: %v", ack.ID, err)
	}
	if ack.Title == "" || ack.Description == "" {
		t.Errorf("ack missing text: %+v", ack)
	}
}

func TestSubmitRejectsInvalid(t *testing.T) {
	desk := NewDesk(10)
	if _, err := desk.Submit(context.Background(), Message{}); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestSubmitRateLimited(t *testing.T) {
	desk := NewDesk(2)
	msg := Message{Name: "a", Email: "a@b.co", Body: "hi"}

	for i := 0; i < 2; i++ {
		if _, err := desk.Submit(context.Background(), msg); err != nil {
			t.Fatalf("submission %d failed: %v", i, err)
		}
	}
	if _, err := desk.Submit(context.Background(), msg); !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}
