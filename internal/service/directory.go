package service

//go:generate mockgen -source=directory.go -destination=mocks/mock_directory.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ContactRepository определяет контракт хранилища справочника контактов.
// Каждая мутация сохраняет весь справочник целиком одним документом.
type ContactRepository interface {
	Load(ctx context.Context) ([]models.Contact, error)
	Save(ctx context.Context, contacts []models.Contact) error
}

// ContactService определяет контракт бизнес-логики справочника экстренных контактов
type ContactService interface {
	Add(ctx context.Context, contact models.Contact) (models.Contact, error)
	Remove(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Contact, error)
	PrimaryOnly(ctx context.Context) ([]models.Contact, error)
}

type contactDirectory struct {
	repo   ContactRepository
	logger *logrus.Logger
	mu     sync.Mutex
}

// NewContactDirectory создает справочник контактов поверх repo
func NewContactDirectory(repo ContactRepository, logger *logrus.Logger) ContactService {
	return &contactDirectory{
		repo:   repo,
		logger: logger,
	}
}

// Add присваивает контакту уникальный id, добавляет его в конец списка
// и немедленно сохраняет весь справочник
func (d *contactDirectory) Add(ctx context.Context, contact models.Contact) (models.Contact, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	log := d.logger.WithFields(logrus.Fields{
		"service": "contacts",
		"method":  "Add",
		"name":    contact.Name,
	})

	contacts, err := d.repo.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load contacts from repository")
		return models.Contact{}, fmt.Errorf("service: could not load contacts: %w", err)
	}

	contact.ID = uuid.New()
	contacts = append(contacts, contact)

	if err := d.repo.Save(ctx, contacts); err != nil {
		log.WithError(err).Error("Failed to save contacts to repository")
		return models.Contact{}, fmt.Errorf("service: could not save contacts: %w", err)
	}

	log.WithField("contact_id", contact.ID).Info("Contact added")
	return contact, nil
}

// Remove удаляет контакт по id; отсутствие контакта не считается ошибкой
func (d *contactDirectory) Remove(ctx context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	log := d.logger.WithFields(logrus.Fields{
		"service":    "contacts",
		"method":     "Remove",
		"contact_id": id,
	})

	contacts, err := d.repo.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load contacts from repository")
		return fmt.Errorf("service: could not load contacts: %w", err)
	}

	filtered := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) == len(contacts) {
		log.Debug("Contact not found, nothing to remove")
		return nil
	}

	if err := d.repo.Save(ctx, filtered); err != nil {
		log.WithError(err).Error("Failed to save contacts to repository")
		return fmt.Errorf("service: could not save contacts: %w", err)
	}

	log.Info("Contact removed")
	return nil
}

// List возвращает копию списка контактов в порядке добавления
func (d *contactDirectory) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := d.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load contacts: %w", err)
	}
	out := make([]models.Contact, len(contacts))
	copy(out, contacts)
	return out, nil
}

// PrimaryOnly возвращает контакты, помеченные как основные
func (d *contactDirectory) PrimaryOnly(ctx context.Context) ([]models.Contact, error) {
	contacts, err := d.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load contacts: %w", err)
	}
	primary := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.IsPrimary {
			primary = append(primary, c)
		}
	}
	return primary, nil
}
