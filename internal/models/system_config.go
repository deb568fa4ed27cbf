package models

// SystemConfig is a singleton row holding admin-tunable settings. The
// store creates it with a default capacity on first read.
type SystemConfig struct {
	ID       uint `gorm:"primaryKey" json:"-"`
	Capacity int  `json:"capacity"`
}
