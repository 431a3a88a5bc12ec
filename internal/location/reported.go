package location

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNoReportedPosition возвращается, пока клиент ни разу не сообщил позицию
var ErrNoReportedPosition = errors.New("location: no position reported yet")

// ReportedProvider — источник позиции, которую клиентское приложение
// периодически сообщает через HTTP-интерфейс. Серверного доступа к
// платформенной геолокации нет, поэтому последнее свежее показание
// клиента играет роль getCurrentPosition.
type ReportedProvider struct {
	maxAge time.Duration

	mu   sync.Mutex
	last *Position
}

// NewReportedProvider создает провайдер с окном свежести maxAge
func NewReportedProvider(maxAge time.Duration) *ReportedProvider {
	return &ReportedProvider{maxAge: maxAge}
}

// Report сохраняет очередное показание клиента
func (p *ReportedProvider) Report(pos Position) {
	if pos.Timestamp.IsZero() {
		pos.Timestamp = time.Now().UTC()
	}
	p.mu.Lock()
	p.last = &pos
	p.mu.Unlock()
}

// CurrentPosition возвращает последнее показание, если оно моложе окна
// свежести. Флаг highAccuracy не влияет: точность задается клиентом.
func (p *ReportedProvider) CurrentPosition(_ context.Context, _ bool) (Position, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last == nil {
		return Position{}, ErrNoReportedPosition
	}
	if age := time.Since(p.last.Timestamp); age > p.maxAge {
		return Position{}, fmt.Errorf("location: reported position is stale (age %s)", age.Round(time.Second))
	}
	return *p.last, nil
}
