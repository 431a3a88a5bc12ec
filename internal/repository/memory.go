package repository

import (
	"context"
	"sync"

	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/service"
)

// MemoryContactRepository хранит справочник контактов в памяти процесса.
// Используется в тестах и при запуске без Redis.
type MemoryContactRepository struct {
	mu       sync.RWMutex
	contacts []models.Contact
}

// NewMemoryContactRepository создает пустой справочник в памяти
func NewMemoryContactRepository() service.ContactRepository {
	return &MemoryContactRepository{}
}

// Load возвращает копию сохраненного справочника
func (r *MemoryContactRepository) Load(_ context.Context) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

// Save замещает справочник целиком
func (r *MemoryContactRepository) Save(_ context.Context, contacts []models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = make([]models.Contact, len(contacts))
	copy(r.contacts, contacts)
	return nil
}

// MemoryAlertRepository — история оповещений и журнал отправок на кольцевых
// буферах в памяти процесса
type MemoryAlertRepository struct {
	mu     sync.RWMutex
	alerts *ring[*models.EmergencyAlert]
	sent   *ring[*models.OutboundMessageRecord]
}

// NewMemoryAlertRepository создает историю с емкостями 100/50
func NewMemoryAlertRepository() service.AlertRepository {
	return &MemoryAlertRepository{
		alerts: newRing[*models.EmergencyAlert](AlertHistoryCap),
		sent:   newRing[*models.OutboundMessageRecord](SentLogCap),
	}
}

// PushAlert добавляет оповещение в голову истории
func (r *MemoryAlertRepository) PushAlert(_ context.Context, alert *models.EmergencyAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts.push(alert)
	return nil
}

// PushSent добавляет запись в голову журнала отправок
func (r *MemoryAlertRepository) PushSent(_ context.Context, rec *models.OutboundMessageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent.push(rec)
	return nil
}

// ListAlerts возвращает оповещения, новые первыми
func (r *MemoryAlertRepository) ListAlerts(_ context.Context) ([]*models.EmergencyAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.alerts.items(), nil
}

// ListSent возвращает журнал отправок, новые первыми
func (r *MemoryAlertRepository) ListSent(_ context.Context) ([]*models.OutboundMessageRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sent.items(), nil
}
