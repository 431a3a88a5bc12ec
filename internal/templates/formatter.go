package templates

import (
	"fmt"
	"strings"

	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
)

// Vars — значения для подстановки в шаблон сообщения
type Vars struct {
	UserName string
	Location string
	Time     string
}

// Format выполняет буквальную замену плейсхолдеров {userName}, {location}
// и {time}. Без экранирования и без рекурсивной подстановки.
func Format(template string, vars Vars) string {
	r := strings.NewReplacer(
		"{userName}", vars.UserName,
		"{location}", vars.Location,
		"{time}", vars.Time,
	)
	return r.Replace(template)
}

// FormatLocation возвращает адрес, если он известен, иначе координаты
// с шестью знаками после запятой
func FormatLocation(snap models.LocationSnapshot) string {
	if snap.Address != "" {
		return snap.Address
	}
	return fmt.Sprintf("%.6f, %.6f", snap.Latitude, snap.Longitude)
}
