package notifier

//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks

import (
	"context"

	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
)

// DeliveryResult — итог попытки доставки одному получателю
type DeliveryResult struct {
	Contact   models.SentContact `json:"contact"`
	Delivered bool               `json:"delivered"`
	Error     string             `json:"error,omitempty"`
}

// Sink — канал доставки сообщений получателям. Настоящий SMS/push-шлюз
// подключается вместо симуляции без изменений в диспетчере.
type Sink interface {
	Deliver(ctx context.Context, message string, contacts []models.Contact) []DeliveryResult
}

// LocalNotifier поднимает локальное уведомление на устройстве пользователя.
// Отсутствие разрешения на уведомления не считается ошибкой доставки.
type LocalNotifier interface {
	Notify(title, body string) error
}
