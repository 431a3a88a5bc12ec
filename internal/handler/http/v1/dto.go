package v1

import (
	"time"

	"github.com/google/uuid"
)

// SendAlertRequest DTO для запуска оповещения (SOS, чек-ин, разряд батареи)
// @Description DTO для запуска оповещения
type SendAlertRequest struct {
	UserName string `json:"user_name" validate:"required,min=1,max=255"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=en hi kn ta te"`
}

// SendSafetyAlertRequest DTO для предупреждения о небезопасной зоне
// @Description DTO для предупреждения о небезопасной зоне
type SendSafetyAlertRequest struct {
	UserName string `json:"user_name" validate:"required,min=1,max=255"`
	Reason   string `json:"reason" validate:"required,min=2,max=500"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=en hi kn ta te"`
}

// CreateContactRequest DTO для добавления экстренного контакта
// @Description DTO для добавления экстренного контакта
type CreateContactRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Phone     string `json:"phone" validate:"required,min=3,max=32"`
	Relation  string `json:"relation,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// ContactResponse DTO с информацией об экстренном контакте
// @Description DTO с информацией об экстренном контакте
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation,omitempty"`
	IsPrimary bool      `json:"is_primary"`
}

// LocationResponse DTO со снимком местоположения
// @Description DTO со снимком местоположения
type LocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertResponse DTO с информацией об отправленном оповещении
// @Description DTO с информацией об отправленном оповещении
type AlertResponse struct {
	ID        uuid.UUID         `json:"id"`
	UserID    string            `json:"user_id"`
	Location  LocationResponse  `json:"location"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Contacts  []ContactResponse `json:"contacts"`
	Language  string            `json:"language"`
	Severity  string            `json:"severity"`
}

// SentRecordResponse DTO с записью журнала отправок
// @Description DTO с записью журнала отправок
type SentRecordResponse struct {
	Timestamp time.Time          `json:"timestamp"`
	Message   string             `json:"message"`
	Contacts  []SentContactEntry `json:"contacts"`
}

// SentContactEntry — получатель в записи журнала отправок
type SentContactEntry struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ReportLocationRequest DTO для показания геолокации от клиента
// @Description DTO для показания геолокации от клиента
type ReportLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Accuracy  float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
}
