package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record owned by the external auth provider. This service
// only reads it (ambassador ownership, notification emails).
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
