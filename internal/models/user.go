package models

import "time"

// User is a member of the social graph. Users are provisioned out of band
// (seed or import); the HTTP surface of this service only reads them.
type User struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Handle      string    `json:"handle" gorm:"size:64;not null;uniqueIndex"` // Unique, case-sensitive, immutable after creation
	DisplayName string    `json:"displayName,omitempty" gorm:"size:128"`
	CreatedAt   time.Time `json:"createdAt"`
}
