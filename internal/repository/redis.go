package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/service"
)

// Ключи совпадают с ключами localStorage справочной реализации
const (
	contactsKey = "emergency-contacts"
	alertsKey   = "emergency-alerts"
	sentLogKey  = "sent-sms"
)

// RedisContactRepository хранит справочник контактов одним JSON-документом
type RedisContactRepository struct {
	redisClient *redis.Client
}

// NewRedisContactRepository создает репозиторий контактов поверх Redis
func NewRedisContactRepository(client *redis.Client) service.ContactRepository {
	return &RedisContactRepository{redisClient: client}
}

// Load возвращает справочник; отсутствие ключа означает пустой справочник
func (r *RedisContactRepository) Load(ctx context.Context) ([]models.Contact, error) {
	val, err := r.redisClient.Get(ctx, contactsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Contact{}, nil
		}
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}

	var contacts []models.Contact
	if err := json.Unmarshal(val, &contacts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contacts: %w", err)
	}
	return contacts, nil
}

// Save замещает справочник целиком одной записью
func (r *RedisContactRepository) Save(ctx context.Context, contacts []models.Contact) error {
	val, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}
	if err := r.redisClient.Set(ctx, contactsKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	return nil
}

// RedisAlertRepository — история оповещений и журнал отправок на списках
// Redis: LPUSH в голову, LTRIM удерживает емкость кольцевого буфера
type RedisAlertRepository struct {
	redisClient *redis.Client
}

// NewRedisAlertRepository создает репозиторий истории поверх Redis
func NewRedisAlertRepository(client *redis.Client) service.AlertRepository {
	return &RedisAlertRepository{redisClient: client}
}

// PushAlert добавляет оповещение в голову истории и обрезает хвост за емкостью
func (r *RedisAlertRepository) PushAlert(ctx context.Context, alert *models.EmergencyAlert) error {
	return r.push(ctx, alertsKey, alert, AlertHistoryCap)
}

// PushSent добавляет запись в голову журнала отправок и обрезает хвост
func (r *RedisAlertRepository) PushSent(ctx context.Context, rec *models.OutboundMessageRecord) error {
	return r.push(ctx, sentLogKey, rec, SentLogCap)
}

func (r *RedisAlertRepository) push(ctx context.Context, key string, v any, capacity int) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record for %s: %w", key, err)
	}

	pipe := r.redisClient.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, int64(capacity)-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push record to %s: %w", key, err)
	}
	return nil
}

// ListAlerts возвращает оповещения, новые первыми
func (r *RedisAlertRepository) ListAlerts(ctx context.Context) ([]*models.EmergencyAlert, error) {
	raw, err := r.redisClient.LRange(ctx, alertsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	alerts := make([]*models.EmergencyAlert, 0, len(raw))
	for _, item := range raw {
		alert := &models.EmergencyAlert{}
		if err := json.Unmarshal([]byte(item), alert); err != nil {
			return nil, fmt.Errorf("failed to unmarshal alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// ListSent возвращает журнал отправок, новые первыми
func (r *RedisAlertRepository) ListSent(ctx context.Context) ([]*models.OutboundMessageRecord, error) {
	raw, err := r.redisClient.LRange(ctx, sentLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sent log: %w", err)
	}

	records := make([]*models.OutboundMessageRecord, 0, len(raw))
	for _, item := range raw {
		rec := &models.OutboundMessageRecord{}
		if err := json.Unmarshal([]byte(item), rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sent record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
