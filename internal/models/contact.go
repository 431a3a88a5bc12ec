package models

import (
	"github.com/google/uuid"
)

// Contact — экстренный контакт пользователя
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation"`
	IsPrimary bool      `json:"is_primary"`
}
