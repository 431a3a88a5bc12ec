package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sakhi-safety/emergency_dispatch_system/internal/config"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/location"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/notifier"
	notifier_mocks "github.com/sakhi-safety/emergency_dispatch_system/internal/notifier/mocks"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/service/mocks"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/templates"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDispatcher — вспомогательная функция для создания диспетчера с моками.
func newTestDispatcher(t *testing.T) (*alertDispatcher, *mocks.MockContactService, *mocks.MockLocationSource, *mocks.MockAlertRepository, *notifier_mocks.MockSink) {
	ctrl := gomock.NewController(t)
	contactsMock := mocks.NewMockContactService(ctrl)
	locationMock := mocks.NewMockLocationSource(ctrl)
	alertsMock := mocks.NewMockAlertRepository(ctrl)
	sinkMock := notifier_mocks.NewMockSink(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		LowBatteryDebounce: time.Hour,
	}

	svc := NewAlertDispatcher(contactsMock, locationMock, templates.NewCatalog(), sinkMock, alertsMock, nil, logger, cfg)
	return svc.(*alertDispatcher), contactsMock, locationMock, alertsMock, sinkMock
}

func testContacts() []models.Contact {
	return []models.Contact{
		{Name: "Maya", Phone: "+91 98450 00001", Relation: "sister", IsPrimary: true},
		{Name: "Ravi", Phone: "+91 98450 00002", Relation: "friend"},
		{Name: "Priya", Phone: "+91 98450 00003", Relation: "mother"},
	}
}

func deliveredAll(contacts []models.Contact) []notifier.DeliveryResult {
	results := make([]notifier.DeliveryResult, len(contacts))
	for i, c := range contacts {
		results[i] = notifier.DeliveryResult{
			Contact:   models.SentContact{Name: c.Name, Phone: c.Phone},
			Delivered: true,
		}
	}
	return results
}

func TestSendSOS_DispatchesToAllContacts(t *testing.T) {
	// Подготовка
	svc, contactsMock, locationMock, alertsMock, sinkMock := newTestDispatcher(t)
	ctx := context.Background()
	contacts := testContacts()
	snap := models.LocationSnapshot{
		Latitude:  12.9716,
		Longitude: 77.5946,
		Address:   "Koramangala, Bangalore, Karnataka, India",
		Timestamp: time.Now().UTC(),
	}

	// Ожидания: SOS запрашивает высокую точность и уходит всем контактам
	locationMock.EXPECT().
		Resolve(ctx, true).
		Return(snap, nil).
		Times(1)

	contactsMock.EXPECT().
		List(ctx).
		Return(contacts, nil).
		Times(1)

	sinkMock.EXPECT().
		Deliver(ctx, gomock.Any(), contacts).
		Return(deliveredAll(contacts)).
		Times(1)

	var stored *models.EmergencyAlert
	alertsMock.EXPECT().
		PushAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.EmergencyAlert) error {
			stored = alert
			return nil
		}).
		Times(1)

	var sentRecord *models.OutboundMessageRecord
	alertsMock.EXPECT().
		PushSent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.OutboundMessageRecord) error {
			sentRecord = rec
			return nil
		}).
		Times(1)

	// Действие
	alert, err := svc.SendSOS(ctx, "Asha", models.LangEnglish)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, alert, stored)
	assert.Equal(t, models.SeverityEmergency, alert.Severity)
	assert.Equal(t, "Asha", alert.UserID)
	assert.Equal(t, contacts, alert.Contacts)
	assert.Equal(t, snap, alert.Location)
	assert.Contains(t, alert.Message, "Asha")
	assert.Contains(t, alert.Message, snap.Address)

	require.NotNil(t, sentRecord)
	assert.Equal(t, alert.Message, sentRecord.Message)
	assert.Len(t, sentRecord.Contacts, len(contacts))
}

func TestSendSOS_EmptyDirectory_StillPersistsAlert(t *testing.T) {
	// Подготовка: пустой справочник не должен прерывать отправку
	svc, contactsMock, locationMock, alertsMock, sinkMock := newTestDispatcher(t)
	ctx := context.Background()
	snap := models.LocationSnapshot{Latitude: 12.9716, Longitude: 77.5946, Timestamp: time.Now().UTC()}

	// Ожидания
	locationMock.EXPECT().Resolve(ctx, true).Return(snap, nil).Times(1)
	contactsMock.EXPECT().List(ctx).Return([]models.Contact{}, nil).Times(1)
	sinkMock.EXPECT().Deliver(ctx, gomock.Any(), gomock.Len(0)).Return(nil).Times(1)
	alertsMock.EXPECT().PushAlert(ctx, gomock.Any()).Return(nil).Times(1)
	alertsMock.EXPECT().PushSent(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := svc.SendSOS(ctx, "Asha", models.LangEnglish)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, alert.Contacts)
}

func TestSendCheckIn_SelectsPrimaryOnly(t *testing.T) {
	// Подготовка: из трех контактов основным помечен один
	svc, contactsMock, locationMock, alertsMock, sinkMock := newTestDispatcher(t)
	ctx := context.Background()
	primary := testContacts()[:1]
	snap := models.LocationSnapshot{Latitude: 12.9716, Longitude: 77.5946, Timestamp: time.Now().UTC()}

	// Ожидания: чек-ин запрашивает обычную точность и только основных
	locationMock.EXPECT().Resolve(ctx, false).Return(snap, nil).Times(1)
	contactsMock.EXPECT().PrimaryOnly(ctx).Return(primary, nil).Times(1)
	sinkMock.EXPECT().Deliver(ctx, gomock.Any(), primary).Return(deliveredAll(primary)).Times(1)
	alertsMock.EXPECT().PushAlert(ctx, gomock.Any()).Return(nil).Times(1)
	alertsMock.EXPECT().PushSent(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := svc.SendCheckIn(ctx, "Asha", models.LangEnglish)

	// Проверки
	require.NoError(t, err)
	require.Len(t, alert.Contacts, 1)
	assert.Equal(t, models.SeverityLow, alert.Severity)
	assert.True(t, alert.Contacts[0].IsPrimary)
}

func TestSendSafetyAlert_LocationUnavailable_NoCache(t *testing.T) {
	// Подготовка: местоположение недоступно, кеша нет - вызов прерывается,
	// ничего не сохраняется и не отправляется
	svc, _, locationMock, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	// Ожидания
	locationMock.EXPECT().
		Resolve(ctx, false).
		Return(models.LocationSnapshot{}, fmt.Errorf("%w: permission denied", location.ErrLocationUnavailable)).
		Times(1)
	locationMock.EXPECT().
		LastKnown().
		Return(models.LocationSnapshot{}, false).
		Times(1)

	// Действие
	alert, err := svc.SendSafetyAlert(ctx, "Asha", "entered unsafe area", models.LangEnglish)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, location.ErrLocationUnavailable)
	assert.Nil(t, alert)
}

func TestSendSafetyAlert_FallsBackToCachedLocation(t *testing.T) {
	// Подготовка: свежий снимок недоступен, но кеш есть - уходим с ним
	svc, contactsMock, locationMock, alertsMock, sinkMock := newTestDispatcher(t)
	ctx := context.Background()
	primary := testContacts()[:1]
	cached := models.LocationSnapshot{
		Latitude:  12.9716,
		Longitude: 77.5946,
		Timestamp: time.Now().UTC().Add(-10 * time.Minute),
	}

	// Ожидания
	locationMock.EXPECT().
		Resolve(ctx, false).
		Return(models.LocationSnapshot{}, fmt.Errorf("%w: timeout", location.ErrLocationUnavailable)).
		Times(1)
	locationMock.EXPECT().LastKnown().Return(cached, true).Times(1)
	contactsMock.EXPECT().PrimaryOnly(ctx).Return(primary, nil).Times(1)
	sinkMock.EXPECT().Deliver(ctx, gomock.Any(), primary).Return(deliveredAll(primary)).Times(1)
	alertsMock.EXPECT().PushAlert(ctx, gomock.Any()).Return(nil).Times(1)
	alertsMock.EXPECT().PushSent(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := svc.SendSafetyAlert(ctx, "Asha", "entered unsafe area", models.LangEnglish)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, alert.Location)
	assert.Equal(t, models.SeverityHigh, alert.Severity)
}

func TestSendSOS_HindiTemplate_CoordinatesFormatting(t *testing.T) {
	// Подготовка: адреса нет - в сообщение попадают координаты
	// с шестью знаками после запятой
	svc, contactsMock, locationMock, alertsMock, sinkMock := newTestDispatcher(t)
	ctx := context.Background()
	contacts := testContacts()
	snap := models.LocationSnapshot{Latitude: 12.9716, Longitude: 77.5946, Timestamp: time.Now().UTC()}

	// Ожидания
	locationMock.EXPECT().Resolve(ctx, true).Return(snap, nil).Times(1)
	contactsMock.EXPECT().List(ctx).Return(contacts, nil).Times(1)
	sinkMock.EXPECT().Deliver(ctx, gomock.Any(), contacts).Return(deliveredAll(contacts)).Times(1)
	alertsMock.EXPECT().PushAlert(ctx, gomock.Any()).Return(nil).Times(1)
	alertsMock.EXPECT().PushSent(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := svc.SendSOS(ctx, "Asha", models.LangHindi)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.LangHindi, alert.Language)
	assert.Contains(t, alert.Message, "Asha")
	assert.Contains(t, alert.Message, "12.971600, 77.594600")
	assert.NotContains(t, alert.Message, "{userName}")
	assert.NotContains(t, alert.Message, "{location}")
	assert.NotContains(t, alert.Message, "{time}")
}

func TestSendLowBatteryAlert_DebouncedWithinWindow(t *testing.T) {
	// Подготовка: повторный вызов внутри окна дебаунса - тихий no-op
	svc, contactsMock, locationMock, alertsMock, sinkMock := newTestDispatcher(t)
	ctx := context.Background()
	primary := testContacts()[:1]
	snap := models.LocationSnapshot{Latitude: 12.9716, Longitude: 77.5946, Timestamp: time.Now().UTC()}

	// Ожидания: полный конвейер ровно один раз
	locationMock.EXPECT().Resolve(ctx, false).Return(snap, nil).Times(1)
	contactsMock.EXPECT().PrimaryOnly(ctx).Return(primary, nil).Times(1)
	sinkMock.EXPECT().Deliver(ctx, gomock.Any(), primary).Return(deliveredAll(primary)).Times(1)
	alertsMock.EXPECT().PushAlert(ctx, gomock.Any()).Return(nil).Times(1)
	alertsMock.EXPECT().PushSent(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	first, err := svc.SendLowBatteryAlert(ctx, "Asha", models.LangEnglish)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.SendLowBatteryAlert(ctx, "Asha", models.LangEnglish)

	// Проверки: ни ошибки, ни дубликата
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestSendCheckIn_PersistFailureSurfacesToCaller(t *testing.T) {
	// Подготовка: несохраненное оповещение не считается отправленным
	svc, contactsMock, locationMock, alertsMock, sinkMock := newTestDispatcher(t)
	ctx := context.Background()
	primary := testContacts()[:1]
	snap := models.LocationSnapshot{Latitude: 12.9716, Longitude: 77.5946, Timestamp: time.Now().UTC()}
	storeErr := fmt.Errorf("хранилище недоступно")

	// Ожидания
	locationMock.EXPECT().Resolve(ctx, false).Return(snap, nil).Times(1)
	contactsMock.EXPECT().PrimaryOnly(ctx).Return(primary, nil).Times(1)
	sinkMock.EXPECT().Deliver(ctx, gomock.Any(), primary).Return(deliveredAll(primary)).Times(1)
	alertsMock.EXPECT().PushAlert(ctx, gomock.Any()).Return(storeErr).Times(1)

	// Действие
	alert, err := svc.SendCheckIn(ctx, "Asha", models.LangEnglish)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, alert)
}

func TestSendSOS_PartialDeliveryFailureDoesNotFailDispatch(t *testing.T) {
	// Подготовка: отказ части получателей не прерывает вызов
	svc, contactsMock, locationMock, alertsMock, sinkMock := newTestDispatcher(t)
	ctx := context.Background()
	contacts := testContacts()
	snap := models.LocationSnapshot{Latitude: 12.9716, Longitude: 77.5946, Timestamp: time.Now().UTC()}

	results := deliveredAll(contacts)
	results[1].Delivered = false
	results[1].Error = "gateway rejected number"

	// Ожидания
	locationMock.EXPECT().Resolve(ctx, true).Return(snap, nil).Times(1)
	contactsMock.EXPECT().List(ctx).Return(contacts, nil).Times(1)
	sinkMock.EXPECT().Deliver(ctx, gomock.Any(), contacts).Return(results).Times(1)
	alertsMock.EXPECT().PushAlert(ctx, gomock.Any()).Return(nil).Times(1)
	alertsMock.EXPECT().PushSent(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := svc.SendSOS(ctx, "Asha", models.LangEnglish)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, contacts, alert.Contacts)
}
