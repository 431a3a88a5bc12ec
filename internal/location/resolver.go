package location

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrLocationUnavailable возвращается, когда платформа не смогла определить
// местоположение. Отказ в разрешении не приводит к панике: вызывающий сам
// решает, откатываться ли на закешированный снимок.
var ErrLocationUnavailable = errors.New("location: unavailable")

// Position — сырое показание платформенного источника геолокации
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	Timestamp time.Time
}

// Provider абстрагирует платформенный вызов getCurrentPosition
type Provider interface {
	CurrentPosition(ctx context.Context, highAccuracy bool) (Position, error)
}

// Geocoder выполняет обратное геокодирование координат в адрес
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// Resolver получает снимок местоположения и кеширует последний удачный.
// Повторных попыток внутри нет, ретраи — забота вызывающего.
type Resolver struct {
	provider Provider
	geocoder Geocoder
	logger   *logrus.Logger

	mu        sync.Mutex
	lastKnown *models.LocationSnapshot
}

// NewResolver создает Resolver; geocoder может быть nil
func NewResolver(provider Provider, geocoder Geocoder, logger *logrus.Logger) *Resolver {
	return &Resolver{
		provider: provider,
		geocoder: geocoder,
		logger:   logger,
	}
}

// Resolve запрашивает свежий снимок местоположения. Успешный снимок
// полностью заменяет закешированный.
func (r *Resolver) Resolve(ctx context.Context, highAccuracy bool) (models.LocationSnapshot, error) {
	pos, err := r.provider.CurrentPosition(ctx, highAccuracy)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to obtain current position")
		return models.LocationSnapshot{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}

	snap := models.LocationSnapshot{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Accuracy:  pos.Accuracy,
		Timestamp: time.Now().UTC(),
	}

	if r.geocoder != nil {
		// Адрес необязателен: оповещение уходит и с голыми координатами
		if addr, gerr := r.geocoder.ReverseGeocode(ctx, pos.Latitude, pos.Longitude); gerr == nil {
			snap.Address = addr
		} else {
			r.logger.WithError(gerr).Debug("Reverse geocoding failed")
		}
	}

	r.mu.Lock()
	r.lastKnown = &snap
	r.mu.Unlock()

	return snap, nil
}

// LastKnown возвращает последний закешированный снимок, если он есть
func (r *Resolver) LastKnown() (models.LocationSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastKnown == nil {
		return models.LocationSnapshot{}, false
	}
	return *r.lastKnown, true
}
