package location

import (
	"context"
	"math/rand"
)

// mockAddresses — демонстрационные адреса вместо внешнего сервиса геокодирования
var mockAddresses = []string{
	"Koramangala, Bangalore, Karnataka, India",
	"Bandra West, Mumbai, Maharashtra, India",
	"Connaught Place, New Delhi, India",
	"Anna Nagar, Chennai, Tamil Nadu, India",
	"Hitech City, Hyderabad, Telangana, India",
}

// StubGeocoder — заглушка обратного геокодирования. Настоящий сервис
// (Google Maps и т.п.) подставляется через интерфейс Geocoder.
type StubGeocoder struct{}

// NewStubGeocoder создает заглушку геокодера
func NewStubGeocoder() *StubGeocoder {
	return &StubGeocoder{}
}

// ReverseGeocode возвращает случайный демонстрационный адрес
func (g *StubGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	return mockAddresses[rand.Intn(len(mockAddresses))], nil
}
