package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	outboundQueueKey = "outbound_messages"
)

// OutboundBatch — пакет, поставленный в очередь на отправку внешним шлюзом
type OutboundBatch struct {
	Message   string               `json:"message"`
	Contacts  []models.SentContact `json:"contacts"`
	Timestamp time.Time            `json:"timestamp"`
}

// GatewaySink ставит исходящие сообщения в очередь Redis. Фактическую
// передачу во внешний SMS-шлюз выполняет GatewayWorker, поэтому для
// диспетчера доставка остается fire-and-forget.
type GatewaySink struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

// NewGatewaySink создает новый GatewaySink
func NewGatewaySink(client *redis.Client, logger *logrus.Logger) *GatewaySink {
	return &GatewaySink{
		redisClient: client,
		logger:      logger,
	}
}

// Deliver публикует пакет сообщений в очередь Redis. Успех означает
// постановку в очередь, а не подтверждение шлюза.
func (s *GatewaySink) Deliver(ctx context.Context, message string, contacts []models.Contact) []DeliveryResult {
	batch := OutboundBatch{
		Message:   message,
		Timestamp: time.Now().UTC(),
		Contacts:  make([]models.SentContact, 0, len(contacts)),
	}
	for _, c := range contacts {
		batch.Contacts = append(batch.Contacts, models.SentContact{Name: c.Name, Phone: c.Phone})
	}

	results := make([]DeliveryResult, len(batch.Contacts))
	for i, rec := range batch.Contacts {
		results[i] = DeliveryResult{Contact: rec}
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		s.logger.WithError(err).Error("Failed to marshal outbound batch")
		for i := range results {
			results[i].Error = err.Error()
		}
		return results
	}

	// Используем LPUSH для добавления пакета в левую часть списка (очереди)
	if err := s.redisClient.LPush(ctx, outboundQueueKey, payload).Err(); err != nil {
		s.logger.WithError(err).Error("Failed to enqueue outbound batch to Redis")
		for i := range results {
			results[i].Error = err.Error()
		}
		return results
	}

	s.logger.WithField("recipients", len(batch.Contacts)).Info("Outbound batch enqueued for gateway")
	for i := range results {
		results[i].Delivered = true
	}
	return results
}
