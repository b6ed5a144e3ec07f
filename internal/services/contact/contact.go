// Package contact accepts and stores messages sent through the landing page
// contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field length caps, in characters.
const (
	MaxFullNameLen = 120
	MaxEmailLen    = 254
	MaxBodyLen     = 4000
)

// Form field names.
const (
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldMessage  = "message"
)

// ErrStoreRequired reports a service built without storage.
var ErrStoreRequired = errors.New("contact store is required")

// Message is one stored contact message.
type Message struct {
	ID        string
	FullName  string
	Email     string
	Body      string
	Locale    string
	CreatedAt time.Time
}

// Submission is raw form input.
type Submission struct {
	FullName string
	Email    string
	Body     string
	Locale   string
}

// ValidationError lists the invalid fields of a submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid contact submission: " + strings.Join(e.Fields, ", ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Normalize trims every field.
func (s Submission) Normalize() Submission {
	return Submission{
		FullName: strings.TrimSpace(s.FullName),
		Email:    strings.TrimSpace(s.Email),
		Body:     strings.TrimSpace(s.Body),
		Locale:   strings.TrimSpace(s.Locale),
	}
}

// Validate checks a normalized submission and returns a *ValidationError
// naming every bad field.
func (s Submission) Validate() error {
	var fields []string
	if s.FullName == "" || utf8.RuneCountInString(s.FullName) > MaxFullNameLen {
		fields = append(fields, FieldFullName)
	}
	if !validEmail(s.Email) {
		fields = append(fields, FieldEmail)
	}
	if s.Body == "" || utf8.RuneCountInString(s.Body) > MaxBodyLen {
		fields = append(fields, FieldMessage)
	}
	if len(fields) == 0 {
		return nil
	}
	sort.Strings(fields)
	return &ValidationError{Fields: fields}
}

// A bare address is required; display-name forms are rejected.
func validEmail(value string) bool {
	if value == "" || len(value) > MaxEmailLen {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	return addr.Address == value && addr.Name == ""
}

// Store persists messages.
type Store interface {
	Create(ctx context.Context, msg Message) error
	List(ctx context.Context, limit int) ([]Message, error)
}

// Service validates and stores contact messages.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewService builds a service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now, newID: uuid.NewString}
}

// Submit validates the submission and stores it.
func (s *Service) Submit(ctx context.Context, submission Submission) (Message, error) {
	if s == nil || s.store == nil {
		return Message{}, ErrStoreRequired
	}
	submission = submission.Normalize()
	if err := submission.Validate(); err != nil {
		return Message{}, err
	}
	msg := Message{
		ID:        s.newID(),
		FullName:  submission.FullName,
		Email:     submission.Email,
		Body:      submission.Body,
		Locale:    submission.Locale,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Create(ctx, msg); err != nil {
		return Message{}, fmt.Errorf("store contact message: %w", err)
	}
	return msg, nil
}

// Recent returns up to limit messages, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Message, error) {
	if s == nil || s.store == nil {
		return nil, ErrStoreRequired
	}
	return s.store.List(ctx, limit)
}
