package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Точки входа конвейера оповещений и история
	alerts := api.Group("/alerts")
	{
		alerts.POST("/sos", h.sendSOS)
		alerts.POST("/safety", h.sendSafetyAlert)
		alerts.POST("/checkin", h.sendCheckIn)
		alerts.GET("", h.listAlerts)
		alerts.GET("/sent", h.listSentLog)
	}

	// Справочник экстренных контактов
	contacts := api.Group("/contacts")
	{
		contacts.POST("", h.addContact)
		contacts.GET("", h.listContacts)
		contacts.DELETE("/:id", h.removeContact)
	}

	// Показания геолокации от клиента
	api.POST("/location/report", h.reportLocation)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
