package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/notifier"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/service"
)

// PostgresAlertArchive — аудиторский архив оповещений. В отличие от
// кольцевой истории ничем не ограничен и хранит исходы доставки по
// каждому получателю.
type PostgresAlertArchive struct {
	db *pgxpool.Pool
}

// NewPostgresAlertArchive создает архив поверх пула соединений
func NewPostgresAlertArchive(db *pgxpool.Pool) service.AlertArchive {
	return &PostgresAlertArchive{db: db}
}

// Archive записывает оповещение и исходы доставки в таблицу архива
func (a *PostgresAlertArchive) Archive(ctx context.Context, alert *models.EmergencyAlert, results []notifier.DeliveryResult) error {
	deliveries, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery results: %w", err)
	}

	query := `
		INSERT INTO alert_archive (
			id, user_id, severity, language, message,
			latitude, longitude, address, recipient_count, deliveries, dispatched_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = a.db.Exec(ctx, query,
		alert.ID,
		alert.UserID,
		alert.Severity,
		alert.Language,
		alert.Message,
		alert.Location.Latitude,
		alert.Location.Longitude,
		alert.Location.Address,
		len(alert.Contacts),
		deliveries,
		alert.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to archive alert: %w", err)
	}
	return nil
}
