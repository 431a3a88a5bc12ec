package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind определяет тип оповещения: от него зависят шаблон сообщения,
// серьёзность и круг получателей
type AlertKind string

const (
	KindSOS         AlertKind = "sos"
	KindSafetyAlert AlertKind = "safetyAlert"
	KindCheckIn     AlertKind = "checkIn"
	KindLowBattery  AlertKind = "lowBattery"
)

// Severity — производная классификация серьёзности оповещения
type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityHigh      Severity = "high"
	SeverityEmergency Severity = "emergency"
)

// Severity возвращает серьёзность, однозначно соответствующую типу оповещения
func (k AlertKind) Severity() Severity {
	switch k {
	case KindSOS:
		return SeverityEmergency
	case KindSafetyAlert:
		return SeverityHigh
	default:
		// checkIn и lowBattery — низкая серьёзность
		return SeverityLow
	}
}

// Language — код языка из поддерживаемого набора локалей
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangKannada Language = "kn"
	LangTamil   Language = "ta"
	LangTelugu  Language = "te"
)

// SupportedLanguages возвращает полный набор поддерживаемых локалей
func SupportedLanguages() []Language {
	return []Language{LangEnglish, LangHindi, LangKannada, LangTamil, LangTelugu}
}

// EmergencyAlert — неизменяемая запись об отправленном оповещении
type EmergencyAlert struct {
	ID        uuid.UUID        `json:"id"`
	UserID    string           `json:"user_id"`
	Location  LocationSnapshot `json:"location"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Contacts  []Contact        `json:"contacts"`
	Language  Language         `json:"language"`
	Severity  Severity         `json:"severity"`
}

// SentContact — облегчённая запись о получателе в журнале отправок
type SentContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OutboundMessageRecord — запись журнала фактически отправленных сообщений,
// независимая от полных метаданных оповещения
type OutboundMessageRecord struct {
	Timestamp time.Time     `json:"timestamp"`
	Message   string        `json:"message"`
	Contacts  []SentContact `json:"contacts"`
}
