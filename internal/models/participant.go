package models

import (
	"time"
)

// StatusRegistered is the only participant status in use; the column is
// kept so future lifecycle states don't need a migration.
const StatusRegistered = "registered"

type Participant struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	BirthDate        time.Time `json:"birth_date"`
	Age              int       `json:"age"`
	RegisteredAt     time.Time `json:"registered_at"`
	Status           string    `json:"status"`
	ConsentDelivered bool      `json:"consent_delivered"`
}
