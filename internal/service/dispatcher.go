package service

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/config"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/notifier"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/templates"
	"github.com/sirupsen/logrus"
)

const lowBatteryDebounceKey = "last-battery-alert"

// AlertRepository определяет контракт ограниченной истории оповещений
// и журнала отправок (кольцевые буферы 100/50, новые записи первыми)
type AlertRepository interface {
	PushAlert(ctx context.Context, alert *models.EmergencyAlert) error
	PushSent(ctx context.Context, rec *models.OutboundMessageRecord) error
	ListAlerts(ctx context.Context) ([]*models.EmergencyAlert, error)
	ListSent(ctx context.Context) ([]*models.OutboundMessageRecord, error)
}

// AlertArchive определяет контракт необязательного аудиторского архива:
// в отличие от истории он ничем не ограничен и хранит исходы доставки
type AlertArchive interface {
	Archive(ctx context.Context, alert *models.EmergencyAlert, results []notifier.DeliveryResult) error
}

// LocationSource определяет контракт получения снимка местоположения
type LocationSource interface {
	Resolve(ctx context.Context, highAccuracy bool) (models.LocationSnapshot, error)
	LastKnown() (models.LocationSnapshot, bool)
}

// AlertService определяет контракт конвейера экстренных оповещений
type AlertService interface {
	SendSOS(ctx context.Context, userName string, lang models.Language) (*models.EmergencyAlert, error)
	SendSafetyAlert(ctx context.Context, userName, reason string, lang models.Language) (*models.EmergencyAlert, error)
	SendCheckIn(ctx context.Context, userName string, lang models.Language) (*models.EmergencyAlert, error)
	SendLowBatteryAlert(ctx context.Context, userName string, lang models.Language) (*models.EmergencyAlert, error)
	AlertHistory(ctx context.Context) ([]*models.EmergencyAlert, error)
	SentLog(ctx context.Context) ([]*models.OutboundMessageRecord, error)
}

type alertDispatcher struct {
	contacts ContactService
	location LocationSource
	catalog  *templates.Catalog
	sink     notifier.Sink
	alerts   AlertRepository
	archive  AlertArchive
	logger   *logrus.Logger

	// Одиночные вызовы сериализуются: повторное нажатие SOS не должно
	// плодить параллельные оповещения
	mu       sync.Mutex
	debounce *gocache.Cache
}

// NewAlertDispatcher создает диспетчер оповещений; archive может быть nil
func NewAlertDispatcher(
	contacts ContactService,
	loc LocationSource,
	catalog *templates.Catalog,
	sink notifier.Sink,
	alerts AlertRepository,
	archive AlertArchive,
	logger *logrus.Logger,
	cfg *config.Config,
) AlertService {
	return &alertDispatcher{
		contacts: contacts,
		location: loc,
		catalog:  catalog,
		sink:     sink,
		alerts:   alerts,
		archive:  archive,
		logger:   logger,
		debounce: gocache.New(cfg.LowBatteryDebounce, 10*time.Minute),
	}
}

// SendSOS отправляет экстренное оповещение всем контактам справочника
func (d *alertDispatcher) SendSOS(ctx context.Context, userName string, lang models.Language) (*models.EmergencyAlert, error) {
	return d.dispatch(ctx, models.KindSOS, userName, "", lang)
}

// SendSafetyAlert отправляет предупреждение только основным контактам.
// Причина не попадает в сообщение, но фиксируется в логе.
func (d *alertDispatcher) SendSafetyAlert(ctx context.Context, userName, reason string, lang models.Language) (*models.EmergencyAlert, error) {
	return d.dispatch(ctx, models.KindSafetyAlert, userName, reason, lang)
}

// SendCheckIn отправляет отметку о благополучном прибытии основным контактам
func (d *alertDispatcher) SendCheckIn(ctx context.Context, userName string, lang models.Language) (*models.EmergencyAlert, error) {
	return d.dispatch(ctx, models.KindCheckIn, userName, "", lang)
}

// SendLowBatteryAlert отправляет оповещение о разряде батареи основным
// контактам. Повторный вызов внутри окна дебаунса - тихий no-op:
// ни ошибки, ни дубликата.
func (d *alertDispatcher) SendLowBatteryAlert(ctx context.Context, userName string, lang models.Language) (*models.EmergencyAlert, error) {
	if _, suppressed := d.debounce.Get(lowBatteryDebounceKey); suppressed {
		d.logger.WithFields(logrus.Fields{
			"service": "dispatcher",
			"method":  "SendLowBatteryAlert",
		}).Debug("Low battery alert suppressed by debounce window")
		return nil, nil
	}

	alert, err := d.dispatch(ctx, models.KindLowBattery, userName, "", lang)
	if err != nil {
		return nil, err
	}
	d.debounce.SetDefault(lowBatteryDebounceKey, time.Now())
	return alert, nil
}

// AlertHistory возвращает сохраненные оповещения, новые первыми
func (d *alertDispatcher) AlertHistory(ctx context.Context) ([]*models.EmergencyAlert, error) {
	alerts, err := d.alerts.ListAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// SentLog возвращает журнал фактически отправленных сообщений, новые первыми
func (d *alertDispatcher) SentLog(ctx context.Context) ([]*models.OutboundMessageRecord, error) {
	records, err := d.alerts.ListSent(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list sent log: %w", err)
	}
	return records, nil
}

// dispatch проводит один вызов через весь конвейер: местоположение →
// шаблон → выбор получателей → доставка → история. Фатален только отказ
// определения местоположения при пустом кеше.
func (d *alertDispatcher) dispatch(ctx context.Context, kind models.AlertKind, userName, reason string, lang models.Language) (*models.EmergencyAlert, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	log := d.logger.WithFields(logrus.Fields{
		"service":  "dispatcher",
		"method":   "dispatch",
		"kind":     kind,
		"severity": kind.Severity(),
		"user":     userName,
		"language": lang,
	})
	if reason != "" {
		log = log.WithField("reason", reason)
	}
	log.Info("Dispatching alert")

	// 1. Местоположение. Для SOS запрашиваем высокую точность.
	// Свежий снимок недоступен и кеша нет - вызов прерывается, ничего
	// не отправляется и не сохраняется.
	snap, err := d.location.Resolve(ctx, kind == models.KindSOS)
	if err != nil {
		cached, ok := d.location.LastKnown()
		if !ok {
			log.WithError(err).Error("Location unavailable and no cached snapshot exists")
			return nil, fmt.Errorf("service: dispatch aborted: %w", err)
		}
		log.WithError(err).Warn("Falling back to stale cached location")
		snap = cached
	}

	// 2. Шаблон и подстановка. Недостижимо при валидном каталоге,
	// см. templates.Catalog.Validate.
	tpl, err := d.catalog.Render(kind, lang)
	if err != nil {
		log.WithError(err).Error("Template lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}
	message := templates.Format(tpl, templates.Vars{
		UserName: userName,
		Location: templates.FormatLocation(snap),
		Time:     time.Now().Format("02/01/2006, 15:04:05"),
	})

	// 3. Получатели: SOS уходит всем, остальные типы - только основным
	var recipients []models.Contact
	if kind == models.KindSOS {
		recipients, err = d.contacts.List(ctx)
	} else {
		recipients, err = d.contacts.PrimaryOnly(ctx)
	}
	if err != nil {
		log.WithError(err).Error("Failed to select recipients")
		return nil, fmt.Errorf("service: could not select recipients: %w", err)
	}
	if len(recipients) == 0 {
		// Пустой справочник не прерывает вызов: оповещение сохраняется
		// без получателей
		log.Warn("Dispatching alert with empty recipient list")
	}

	// 4. Доставка best-effort: отказ части получателей не прерывает вызов
	results := d.sink.Deliver(ctx, message, recipients)
	for _, res := range results {
		if !res.Delivered {
			log.WithFields(logrus.Fields{
				"phone":          res.Contact.Phone,
				"delivery_error": res.Error,
			}).Warn("Delivery failed for recipient")
		}
	}

	alert := &models.EmergencyAlert{
		ID:        uuid.New(),
		UserID:    userName,
		Location:  snap,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Contacts:  recipients,
		Language:  lang,
		Severity:  kind.Severity(),
	}

	// 5. История. Отказ основного хранилища виден вызывающему: несохраненное
	// оповещение не считается отправленным.
	if err := d.alerts.PushAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to persist alert")
		return nil, fmt.Errorf("service: could not persist alert: %w", err)
	}

	sentRecord := &models.OutboundMessageRecord{
		Timestamp: alert.Timestamp,
		Message:   message,
		Contacts:  toSentContacts(recipients),
	}
	if err := d.alerts.PushSent(ctx, sentRecord); err != nil {
		// Журнал отправок вторичен, оповещение уже сохранено
		log.WithError(err).Warn("Failed to persist sent-log record")
	}

	if d.archive != nil {
		if err := d.archive.Archive(ctx, alert, results); err != nil {
			log.WithError(err).Warn("Failed to archive alert")
		}
	}

	log.WithFields(logrus.Fields{
		"alert_id":   alert.ID,
		"recipients": len(recipients),
	}).Info("Alert dispatched")
	return alert, nil
}

func toSentContacts(contacts []models.Contact) []models.SentContact {
	out := make([]models.SentContact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, models.SentContact{Name: c.Name, Phone: c.Phone})
	}
	return out
}
