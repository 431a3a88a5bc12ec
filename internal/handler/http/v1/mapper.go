package v1

import "github.com/sakhi-safety/emergency_dispatch_system/internal/models"

// DTOToContactModel преобразует DTO создания контакта в доменную модель.
// ID присваивает сервис.
func DTOToContactModel(dto CreateContactRequest) models.Contact {
	return models.Contact{
		Name:      dto.Name,
		Phone:     dto.Phone,
		Relation:  dto.Relation,
		IsPrimary: dto.IsPrimary,
	}
}

// ModelToContactResponse преобразует доменную модель контакта в DTO ответа
func ModelToContactResponse(model models.Contact) ContactResponse {
	return ContactResponse{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Relation:  model.Relation,
		IsPrimary: model.IsPrimary,
	}
}

// ModelsToContactResponses преобразует слайс моделей контактов в слайс DTO
func ModelsToContactResponses(contacts []models.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		responses[i] = ModelToContactResponse(c)
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель оповещения в DTO ответа
func ModelToAlertResponse(model *models.EmergencyAlert) *AlertResponse {
	return &AlertResponse{
		ID:     model.ID,
		UserID: model.UserID,
		Location: LocationResponse{
			Latitude:  model.Location.Latitude,
			Longitude: model.Location.Longitude,
			Accuracy:  model.Location.Accuracy,
			Address:   model.Location.Address,
			Timestamp: model.Location.Timestamp,
		},
		Message:   model.Message,
		Timestamp: model.Timestamp,
		Contacts:  ModelsToContactResponses(model.Contacts),
		Language:  string(model.Language),
		Severity:  string(model.Severity),
	}
}

// ModelsToAlertResponses преобразует слайс моделей оповещений в слайс DTO
func ModelsToAlertResponses(alerts []*models.EmergencyAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = ModelToAlertResponse(a)
	}
	return responses
}

// ModelsToSentResponses преобразует журнал отправок в слайс DTO
func ModelsToSentResponses(records []*models.OutboundMessageRecord) []*SentRecordResponse {
	responses := make([]*SentRecordResponse, len(records))
	for i, rec := range records {
		entries := make([]SentContactEntry, len(rec.Contacts))
		for j, c := range rec.Contacts {
			entries[j] = SentContactEntry{Name: c.Name, Phone: c.Phone}
		}
		responses[i] = &SentRecordResponse{
			Timestamp: rec.Timestamp,
			Message:   rec.Message,
			Contacts:  entries,
		}
	}
	return responses
}
