package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cesam-goiania/encontro-api/internal/models"
)

// Store is the document-store boundary the controller writes through.
// Implementations must complete a write before the next ListParticipants
// observes it; no other consistency is assumed.
type Store interface {
	CreateParticipant(ctx context.Context, p models.Participant) (string, error)
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	UpdateParticipant(ctx context.Context, id string, fields map[string]any) error
	DeleteParticipant(ctx context.Context, id string) error
	ReadConfig(ctx context.Context) (models.SystemConfig, error)
	WriteConfig(ctx context.Context, cfg models.SystemConfig) error
}

// Candidate is a registration as collected from the form, before any
// system fields are stamped.
type Candidate struct {
	Name      string
	Phone     string
	BirthDate time.Time
}

// AdmissionResult is a successfully persisted registration.
// RequiresConsent signals the guardian-consent instructional step for
// minors; it carries no extra persisted state.
type AdmissionResult struct {
	Participant     models.Participant
	RequiresConsent bool
}

// Update carries the admin-editable fields; all of them overwrite the
// stored record, and age is recomputed from the new birth date.
type Update struct {
	Name             string
	Phone            string
	BirthDate        time.Time
	ConsentDelivered bool
}

// Service is the admission controller: the only write path into the
// roster.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Admit validates the candidate, applies the capacity gate and persists
// exactly one record. The size check and the write are not one
// transaction: two admissions racing at the boundary can both pass, so
// the roster may transiently exceed capacity. Accepted trade-off, same
// as the original system.
func (s *Service) Admit(ctx context.Context, c Candidate) (AdmissionResult, error) {
	now := s.now()
	p, err := buildRecord(c, now)
	if err != nil {
		return AdmissionResult{}, err
	}

	current, err := s.store.ListParticipants(ctx)
	if err != nil {
		return AdmissionResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	cfg, err := s.store.ReadConfig(ctx)
	if err != nil {
		return AdmissionResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if len(current) >= cfg.Capacity {
		return AdmissionResult{}, ErrCapacityExceeded
	}

	id, err := s.store.CreateParticipant(ctx, p)
	if err != nil {
		return AdmissionResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	p.ID = id

	return AdmissionResult{Participant: p, RequiresConsent: IsMinor(p.Age)}, nil
}

// AdminCreate registers a participant on behalf of an admin. The same
// capacity cap applies; raising the limit is the admin's override.
func (s *Service) AdminCreate(ctx context.Context, c Candidate) (models.Participant, error) {
	res, err := s.Admit(ctx, c)
	return res.Participant, err
}

// AdminUpdate overwrites the editable fields of an existing record.
func (s *Service) AdminUpdate(ctx context.Context, id string, u Update) error {
	if u.Name == "" {
		return ErrNameRequired
	}
	if u.BirthDate.IsZero() {
		return ErrBirthDateRequired
	}
	age, err := ComputeAge(u.BirthDate, s.now())
	if err != nil {
		return err
	}

	return s.wrapStoreErr(s.store.UpdateParticipant(ctx, id, map[string]any{
		"name":              u.Name,
		"phone":             FormatPhone(u.Phone),
		"birth_date":        u.BirthDate,
		"age":               age,
		"consent_delivered": u.ConsentDelivered,
	}))
}

// SetConsent flips the guardian-consent delivery flag on one record.
func (s *Service) SetConsent(ctx context.Context, id string, delivered bool) error {
	return s.wrapStoreErr(s.store.UpdateParticipant(ctx, id, map[string]any{
		"consent_delivered": delivered,
	}))
}

// AdminDelete removes a record permanently. There is no soft delete and
// no undo.
func (s *Service) AdminDelete(ctx context.Context, id string) error {
	return s.wrapStoreErr(s.store.DeleteParticipant(ctx, id))
}

// SetCapacity persists a new participant limit.
func (s *Service) SetCapacity(ctx context.Context, capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	cfg, err := s.store.ReadConfig(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	cfg.Capacity = capacity
	if err := s.store.WriteConfig(ctx, cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *Service) wrapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}

func buildRecord(c Candidate, now time.Time) (models.Participant, error) {
	if c.Name == "" {
		return models.Participant{}, ErrNameRequired
	}
	if c.BirthDate.IsZero() {
		return models.Participant{}, ErrBirthDateRequired
	}
	age, err := ComputeAge(c.BirthDate, now)
	if err != nil {
		return models.Participant{}, err
	}

	return models.Participant{
		Name:             c.Name,
		Phone:            FormatPhone(c.Phone),
		BirthDate:        c.BirthDate,
		Age:              age,
		RegisteredAt:     now,
		Status:           models.StatusRegistered,
		ConsentDelivered: false,
	}, nil
}
