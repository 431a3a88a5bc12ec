package templates

import (
	"errors"
	"fmt"

	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
)

// ErrTemplateMissing означает ошибку конфигурации каталога: для типа
// оповещения нет даже английского шаблона. По построению недостижима,
// пока Validate проходит при старте.
var ErrTemplateMissing = errors.New("templates: template missing")

// Catalog хранит шаблоны сообщений, типизированные по паре (тип, язык)
type Catalog struct {
	table map[models.AlertKind]map[models.Language]string
}

// NewCatalog создает каталог со встроенным набором шаблонов
func NewCatalog() *Catalog {
	return &Catalog{table: defaultTemplates}
}

// Render возвращает шаблон для пары (kind, lang). Порядок поиска:
// точное совпадение, затем английский шаблон того же типа.
func (c *Catalog) Render(kind models.AlertKind, lang models.Language) (string, error) {
	byLang, ok := c.table[kind]
	if !ok {
		return "", fmt.Errorf("%w: kind %q", ErrTemplateMissing, kind)
	}
	if tpl, ok := byLang[lang]; ok {
		return tpl, nil
	}
	tpl, ok := byLang[models.LangEnglish]
	if !ok {
		return "", fmt.Errorf("%w: kind %q has no english fallback", ErrTemplateMissing, kind)
	}
	return tpl, nil
}

// Validate проверяет полноту английского набора для всех типов оповещений.
// Вызывается при старте, чтобы ошибка конфигурации обнаружилась сразу.
func (c *Catalog) Validate() error {
	kinds := []models.AlertKind{
		models.KindSOS,
		models.KindSafetyAlert,
		models.KindCheckIn,
		models.KindLowBattery,
	}
	for _, kind := range kinds {
		if _, ok := c.table[kind][models.LangEnglish]; !ok {
			return fmt.Errorf("%w: kind %q has no english template", ErrTemplateMissing, kind)
		}
	}
	return nil
}
