package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// SimulatedSink имитирует отправку SMS: искусственная задержка вместо
// сетевой, отправка пишется в лог, опционально поднимается локальное
// уведомление по каждому получателю
type SimulatedSink struct {
	delay  time.Duration
	local  LocalNotifier
	logger *logrus.Logger
}

// NewSimulatedSink создает симулятор доставки; local может быть nil
func NewSimulatedSink(delay time.Duration, local LocalNotifier, logger *logrus.Logger) *SimulatedSink {
	return &SimulatedSink{
		delay:  delay,
		local:  local,
		logger: logger,
	}
}

// Deliver последовательно "отправляет" сообщение каждому контакту.
// Отказы отдельных получателей попадают в результат, но не прерывают
// доставку остальным.
func (s *SimulatedSink) Deliver(ctx context.Context, message string, contacts []models.Contact) []DeliveryResult {
	log := s.logger.WithFields(logrus.Fields{
		"sink":       "simulated",
		"recipients": len(contacts),
	})
	log.Info("Delivering message to emergency contacts")

	results := make([]DeliveryResult, 0, len(contacts))
	for _, c := range contacts {
		rec := models.SentContact{Name: c.Name, Phone: c.Phone}

		select {
		case <-ctx.Done():
			results = append(results, DeliveryResult{
				Contact: rec,
				Error:   ctx.Err().Error(),
			})
			continue
		case <-time.After(s.delay):
		}

		log.WithFields(logrus.Fields{
			"name":  c.Name,
			"phone": c.Phone,
		}).Info("Simulated SMS sent")

		if s.local != nil {
			if err := s.local.Notify(
				fmt.Sprintf("SMS sent to %s", c.Name),
				fmt.Sprintf("Emergency message sent to %s", c.Phone),
			); err != nil {
				// Нет разрешения на уведомления - доставка все равно состоялась
				log.WithError(err).Debug("Local notification skipped")
			}
		}

		results = append(results, DeliveryResult{Contact: rec, Delivered: true})
	}
	return results
}
