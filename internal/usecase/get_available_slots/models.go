package get_available_slots

import (
	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	ServiceID string           // ID услуги (на результат не влияет, только проверяется существование)
	Date      types.DateString // Дата в формате YYYY-MM-DD
}

// Response модель ответа со списком слотов
type Response struct {
	ServiceID string
	Date      types.DateString
	OpenTime  types.TimeString
	CloseTime types.TimeString
	Slots     []domain.TimeSlot // По возрастанию времени
}

// HasAvailable возвращает true, если есть хотя бы один свободный слот
func (r *Response) HasAvailable() bool {
	for _, slot := range r.Slots {
		if slot.Available {
			return true
		}
	}
	return false
}
