// Package contact acknowledges contact-form submissions. Messages are logged
// and acknowledged locally; nothing is stored or delivered.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"acadcalc/internal/logger"
)

const maxBodyLen = 4000

var (
	// ErrInvalidMessage is wrapped by validation failures.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrRateLimited means too many submissions arrived recently.
	ErrRateLimited = errors.New("too many messages, try again later")
)

// Message is a contact-form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Ack is the acknowledgment shown after a submission.
type Ack struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Normalize trims surrounding whitespace from every field.
func (m Message) Normalize() Message {
	return Message{
		Name:  strings.TrimSpace(m.Name),
		Email: strings.TrimSpace(m.Email),
		Body:  strings.TrimSpace(m.Body),
	}
}

// Validate checks that all fields are present and the email parses.
func (m Message) Validate() error {
	m = m.Normalize()
	switch {
	case m.Name == "":
		return wrap("name is required")
	case m.Email == "":
		return wrap("email is required")
	case m.Body == "":
		return wrap("message is required")
	case len(m.Body) > maxBodyLen:
		return wrap("message is too long")
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return wrap("email address is not valid")
	}
	return nil
}

func wrap(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMessage, msg)
}

// Desk accepts submissions at a bounded rate.
type Desk struct {
	limiter *rate.Limiter
}

// NewDesk returns a desk accepting perMinute submissions per minute with a
// burst of the same size.
func NewDesk(perMinute int) *Desk {
	if perMinute < 1 {
		perMinute = 1
	}
	return &Desk{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

// Submit validates m and returns an acknowledgment.
func (d *Desk) Submit(ctx context.Context, m Message) (Ack, error) {
	m = m.Normalize()
	if err := m.Validate(); err != nil {
		return Ack{}, err
	}
	if !d.limiter.Allow() {
		return Ack{}, ErrRateLimited
	}

	ack := Ack{
		ID:          uuid.New().String(),
		Title:       "Message sent! 📧",
		Description: "We will get back to you shortly.",
	}

	logger.Get(ctx).Info().
		Str("ack_id", ack.ID).
		Str("name", m.Name).
		Str("email", m.Email).
		Int("body_len", len(m.Body)).
		Msg("Contact message received")

	return ack, nil
}
