// Package store implements the roster document-store boundary on gorm.
// All filtering happens in memory in the roster package; the store only
// does whole-collection reads and single-document writes.
package store

import (
	"context"
	"errors"

	"github.com/cesam-goiania/encontro-api/internal/models"
	"github.com/cesam-goiania/encontro-api/internal/roster"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// configRowID pins the SystemConfig singleton to one row.
const configRowID = 1

type RosterStore struct {
	db              *gorm.DB
	defaultCapacity int
}

func New(db *gorm.DB, defaultCapacity int) *RosterStore {
	return &RosterStore{db: db, defaultCapacity: defaultCapacity}
}

// CreateParticipant appends one record and returns its store-assigned id.
func (s *RosterStore) CreateParticipant(ctx context.Context, p models.Participant) (string, error) {
	p.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return "", err
	}
	return p.ID, nil
}

// ListParticipants returns the whole roster in registration order.
func (s *RosterStore) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	var participants []models.Participant
	err := s.db.WithContext(ctx).Order("registered_at, id").Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

// UpdateParticipant overwrites the given columns on one record.
func (s *RosterStore) UpdateParticipant(ctx context.Context, id string, fields map[string]any) error {
	var p models.Participant
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return roster.ErrNotFound
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&p).Updates(fields).Error
}

// DeleteParticipant removes one record permanently.
func (s *RosterStore) DeleteParticipant(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Participant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return roster.ErrNotFound
	}
	return nil
}

// ReadConfig returns the singleton configuration, creating it with the
// default capacity on first read.
func (s *RosterStore) ReadConfig(ctx context.Context) (models.SystemConfig, error) {
	var cfg models.SystemConfig
	err := s.db.WithContext(ctx).First(&cfg, "id = ?", configRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = models.SystemConfig{ID: configRowID, Capacity: s.defaultCapacity}
		if err := s.db.WithContext(ctx).Create(&cfg).Error; err != nil {
			return models.SystemConfig{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return models.SystemConfig{}, err
	}
	return cfg, nil
}

// WriteConfig persists the singleton configuration.
func (s *RosterStore) WriteConfig(ctx context.Context, cfg models.SystemConfig) error {
	cfg.ID = configRowID
	return s.db.WithContext(ctx).Save(&cfg).Error
}
