package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// GatewayWorker - структура для передачи очереди исходящих сообщений внешнему шлюзу
type GatewayWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewGatewayWorker создает новый GatewayWorker
func NewGatewayWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *GatewayWorker {
	return &GatewayWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.GatewayTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди исходящих сообщений
func (w *GatewayWorker) Start(ctx context.Context) {
	w.logger.Info("Starting gateway worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping gateway worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, outboundQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop outbound batch from Redis")
					time.Sleep(w.cfg.GatewayTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var batch OutboundBatch
				if err := json.Unmarshal([]byte(payload), &batch); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal outbound batch from Redis")
					continue
				}

				w.forwardBatch(ctx, batch, payload)
			}
		}
	}()
}

func (w *GatewayWorker) forwardBatch(ctx context.Context, batch OutboundBatch, rawPayload string) {
	log := w.logger.WithField("recipients", len(batch.Contacts))
	log.Debug("Forwarding outbound batch to gateway...")

	if w.cfg.GatewayURL == "" {
		log.Warn("Gateway URL is not configured. Skipping batch delivery.")
		return
	}

	maxRetries := w.cfg.GatewayMaxRetries
	baseDelay := w.cfg.GatewayBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.GatewayURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create gateway request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если GATEWAY_SECRET задан
		if w.cfg.GatewaySecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.GatewaySecret)
			req.Header.Set("X-Gateway-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to reach gateway. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Outbound batch delivered to gateway.")
			return
		}

		log.Warnf("Gateway responded with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver outbound batch after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
