package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ServiceID    string         `json:"serviceId"`
	Date         string         `json:"date"`
	OpenTime     string         `json:"openTime"`
	CloseTime    string         `json:"closeTime"`
	HasAvailable bool           `json:"hasAvailable"` // false - показываем "нет свободных слотов"
	Slots        []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(serviceID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		})
	}

	return &AvailableSlotsResponse{
		ServiceID:    resp.ServiceID,
		Date:         resp.Date.String(),
		OpenTime:     resp.OpenTime.String(),
		CloseTime:    resp.CloseTime.String(),
		HasAvailable: resp.HasAvailable(),
		Slots:        slots,
	}
}
