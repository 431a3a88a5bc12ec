package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/config"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/location"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// LocationReporter принимает показания геолокации от клиентского приложения
type LocationReporter interface {
	Report(pos location.Position)
}

type Handler struct {
	alertService   service.AlertService
	contactService service.ContactService
	reporter       LocationReporter
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(alertService service.AlertService, contactService service.ContactService, reporter LocationReporter, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService:   alertService,
		contactService: contactService,
		reporter:       reporter,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// language подставляет язык по умолчанию вместо пустого значения
func (h *Handler) language(raw string) models.Language {
	if raw == "" {
		return models.Language(h.cfg.DefaultLanguage)
	}
	return models.Language(raw)
}

// respondDispatchError транслирует ошибку конвейера в HTTP-ответ.
// Пользователя блокирует только недоступность местоположения без кеша.
func respondDispatchError(c *gin.Context, log *logrus.Entry, err error) {
	if errors.Is(err, location.ErrLocationUnavailable) {
		log.WithError(err).Warn("Dispatch blocked: location unavailable")
		c.JSON(http.StatusConflict, gin.H{"error": "location unavailable, enable location access and try again"})
		return
	}
	log.WithError(err).Error("Failed to dispatch alert")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// @Summary Send an SOS alert
// @Description Dispatch an emergency SOS alert to ALL emergency contacts. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body SendAlertRequest true "SOS request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Location unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/sos [post]
func (h *Handler) sendSOS(c *gin.Context) {
	var input SendAlertRequest
	log := h.logger.WithField("method", "sendSOS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.SendSOS(c.Request.Context(), input.UserName, h.language(input.Language))
	if err != nil {
		respondDispatchError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Send a safety alert
// @Description Dispatch a safety alert to primary emergency contacts only. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body SendSafetyAlertRequest true "Safety alert request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Location unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/safety [post]
func (h *Handler) sendSafetyAlert(c *gin.Context) {
	var input SendSafetyAlertRequest
	log := h.logger.WithField("method", "sendSafetyAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.SendSafetyAlert(c.Request.Context(), input.UserName, input.Reason, h.language(input.Language))
	if err != nil {
		respondDispatchError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Send a check-in
// @Description Dispatch a safe-arrival check-in to primary emergency contacts. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body SendAlertRequest true "Check-in request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Location unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/checkin [post]
func (h *Handler) sendCheckIn(c *gin.Context) {
	var input SendAlertRequest
	log := h.logger.WithField("method", "sendCheckIn")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.SendCheckIn(c.Request.Context(), input.UserName, h.language(input.Language))
	if err != nil {
		respondDispatchError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Get alert history
// @Description Get the bounded alert history, most recent first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.alertService.AlertHistory(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get the sent-message log
// @Description Get the bounded log of actually sent messages, most recent first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SentRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/sent [get]
func (h *Handler) listSentLog(c *gin.Context) {
	log := h.logger.WithField("method", "listSentLog")

	records, err := h.alertService.SentLog(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list sent log from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToSentResponses(records))
}

// @Summary Add an emergency contact
// @Description Add a new emergency contact to the directory. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param contact body CreateContactRequest true "Contact creation request"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [post]
func (h *Handler) addContact(c *gin.Context) {
	var input CreateContactRequest
	log := h.logger.WithField("method", "addContact")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.Add(c.Request.Context(), DTOToContactModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to add contact in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToContactResponse(contact))
}

// @Summary List emergency contacts
// @Description Get all emergency contacts in insertion order. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ContactResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	log := h.logger.WithField("method", "listContacts")

	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list contacts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary Remove an emergency contact
// @Description Remove an emergency contact by ID. Removing an absent contact is a no-op. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid contact ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts/{id} [delete]
func (h *Handler) removeContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact ID"})
		return
	}
	log := h.logger.WithField("method", "removeContact").WithField("id", id)

	if err := h.contactService.Remove(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to remove contact in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Report a client location reading
// @Description Store the latest device position so alerts can resolve against it. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param position body ReportLocationRequest true "Location reading"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/report [post]
func (h *Handler) reportLocation(c *gin.Context) {
	var input ReportLocationRequest
	log := h.logger.WithField("method", "reportLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.reporter.Report(location.Position{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy,
	})
	c.Status(http.StatusAccepted)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
