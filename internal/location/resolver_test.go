package location

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	pos Position
	err error

	lastHighAccuracy bool
}

func (f *fakeProvider) CurrentPosition(_ context.Context, highAccuracy bool) (Position, error) {
	f.lastHighAccuracy = highAccuracy
	if f.err != nil {
		return Position{}, f.err
	}
	return f.pos, nil
}

type fakeGeocoder struct {
	address string
	err     error
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	return f.address, f.err
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestResolver_Resolve_CachesSuccessfulSnapshot(t *testing.T) {
	// Подготовка
	provider := &fakeProvider{pos: Position{Latitude: 12.9716, Longitude: 77.5946, Accuracy: 12}}
	geocoder := &fakeGeocoder{address: "MG Road, Bangalore, Karnataka, India"}
	resolver := NewResolver(provider, geocoder, testLogger())

	// Кеш пуст до первого удачного снимка
	_, ok := resolver.LastKnown()
	require.False(t, ok)

	// Действие
	snap, err := resolver.Resolve(context.Background(), true)

	// Проверки
	require.NoError(t, err)
	assert.True(t, provider.lastHighAccuracy)
	assert.Equal(t, 12.9716, snap.Latitude)
	assert.Equal(t, 77.5946, snap.Longitude)
	assert.Equal(t, "MG Road, Bangalore, Karnataka, India", snap.Address)
	assert.False(t, snap.Timestamp.IsZero())

	cached, ok := resolver.LastKnown()
	require.True(t, ok)
	assert.Equal(t, snap, cached)
}

func TestResolver_Resolve_ProviderFailure(t *testing.T) {
	// Подготовка
	provider := &fakeProvider{err: fmt.Errorf("permission denied")}
	resolver := NewResolver(provider, nil, testLogger())

	// Действие
	_, err := resolver.Resolve(context.Background(), false)

	// Проверки: ошибка обернута в сентинел, кеш не появился
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocationUnavailable)
	_, ok := resolver.LastKnown()
	assert.False(t, ok)
}

func TestResolver_Resolve_GeocoderFailureIsNotFatal(t *testing.T) {
	// Подготовка: геокодер отказал - оповещение уходит с голыми координатами
	provider := &fakeProvider{pos: Position{Latitude: 12.9716, Longitude: 77.5946}}
	geocoder := &fakeGeocoder{err: fmt.Errorf("geocoder unreachable")}
	resolver := NewResolver(provider, geocoder, testLogger())

	// Действие
	snap, err := resolver.Resolve(context.Background(), false)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, snap.Address)
}

func TestResolver_Resolve_FailureKeepsPreviousCache(t *testing.T) {
	// Подготовка: после удачного снимка провайдер начинает отказывать
	provider := &fakeProvider{pos: Position{Latitude: 12.9716, Longitude: 77.5946}}
	resolver := NewResolver(provider, nil, testLogger())

	first, err := resolver.Resolve(context.Background(), false)
	require.NoError(t, err)

	provider.err = fmt.Errorf("timeout")

	// Действие
	_, err = resolver.Resolve(context.Background(), false)

	// Проверки: кеш пережил отказ
	require.Error(t, err)
	cached, ok := resolver.LastKnown()
	require.True(t, ok)
	assert.Equal(t, first, cached)
}

func TestReportedProvider_FreshPosition(t *testing.T) {
	// Подготовка
	provider := NewReportedProvider(5 * time.Minute)
	provider.Report(Position{Latitude: 12.9716, Longitude: 77.5946, Accuracy: 8})

	// Действие
	pos, err := provider.CurrentPosition(context.Background(), true)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 12.9716, pos.Latitude)
	assert.False(t, pos.Timestamp.IsZero())
}

func TestReportedProvider_NoReportYet(t *testing.T) {
	provider := NewReportedProvider(5 * time.Minute)

	_, err := provider.CurrentPosition(context.Background(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoReportedPosition)
}

func TestReportedProvider_StalePosition(t *testing.T) {
	// Подготовка: показание старше окна свежести
	provider := NewReportedProvider(5 * time.Minute)
	provider.Report(Position{
		Latitude:  12.9716,
		Longitude: 77.5946,
		Timestamp: time.Now().UTC().Add(-10 * time.Minute),
	})

	// Действие
	_, err := provider.CurrentPosition(context.Background(), false)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale")
}

func TestStubGeocoder_ReturnsKnownAddress(t *testing.T) {
	// Подготовка
	geocoder := NewStubGeocoder()

	// Действие
	addr, err := geocoder.ReverseGeocode(context.Background(), 12.9716, 77.5946)

	// Проверки: адрес всегда из фиксированного набора
	require.NoError(t, err)
	assert.Contains(t, mockAddresses, addr)
}
