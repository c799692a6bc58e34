package booking_flow

import (
	"fmt"

	appointmentModels "github.com/m04kA/SMC-LuxeBook/internal/service/appointments/models"
	serviceModels "github.com/m04kA/SMC-LuxeBook/internal/service/services/models"
	bookingFlow "github.com/m04kA/SMC-LuxeBook/internal/usecase/booking_flow"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// EventRequest HTTP модель события мастера; набор полей зависит от type
type EventRequest struct {
	Type          string `json:"type"`
	ServiceID     string `json:"serviceId,omitempty"`     // choose_service
	Date          string `json:"date,omitempty"`          // change_date
	Time          string `json:"time,omitempty"`          // choose_slot
	CustomerName  string `json:"customerName,omitempty"`  // submit
	CustomerPhone string `json:"customerPhone,omitempty"` // submit
	Notes         string `json:"notes,omitempty"`         // submit
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FlowResponse HTTP модель текущего шага мастера.
// Заполнены только поля, относящиеся к шагу state.
type FlowResponse struct {
	ID           string                                 `json:"id"`
	State        string                                 `json:"state"`
	Submitting   bool                                   `json:"submitting"`
	Service      *serviceModels.ServiceResponse         `json:"service,omitempty"`
	Date         string                                 `json:"date,omitempty"`
	Slots        []SlotResponse                         `json:"slots,omitempty"`
	HasAvailable *bool                                  `json:"hasAvailable,omitempty"`
	SelectedTime string                                 `json:"selectedTime,omitempty"`
	Appointment  *appointmentModels.AppointmentResponse `json:"appointment,omitempty"`
}

// ToEvent конвертирует HTTP запрос в событие машины состояний
func (r *EventRequest) ToEvent() (bookingFlow.Event, error) {
	switch bookingFlow.EventType(r.Type) {
	case bookingFlow.EventChooseService:
		return bookingFlow.ChooseService{ServiceID: r.ServiceID}, nil

	case bookingFlow.EventChangeDate:
		date, err := types.NewDateStringFromString(r.Date)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		return bookingFlow.ChangeDate{Date: date}, nil

	case bookingFlow.EventChooseSlot:
		slotTime, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, fmt.Errorf("time: %w", err)
		}
		return bookingFlow.ChooseSlot{Time: slotTime}, nil

	case bookingFlow.EventNext:
		return bookingFlow.Next{}, nil

	case bookingFlow.EventBack:
		return bookingFlow.Back{}, nil

	case bookingFlow.EventSubmit:
		return bookingFlow.Submit{
			CustomerName:  r.CustomerName,
			CustomerPhone: r.CustomerPhone,
			Notes:         r.Notes,
		}, nil

	case bookingFlow.EventBookAnother:
		return bookingFlow.BookAnother{}, nil

	case bookingFlow.EventExit:
		return bookingFlow.Exit{}, nil

	default:
		return nil, fmt.Errorf("unknown event type %q", r.Type)
	}
}

// FromSnapshot конвертирует снимок сценария в HTTP response
func FromSnapshot(snapshot bookingFlow.Snapshot) *FlowResponse {
	resp := &FlowResponse{
		ID:         snapshot.ID,
		State:      string(snapshot.State.Name()),
		Submitting: snapshot.Submitting,
	}

	switch state := snapshot.State.(type) {
	case bookingFlow.SelectSlot:
		resp.Service = serviceModels.FromDomainService(&state.Service)
		resp.Date = state.Date.String()
		resp.Slots = make([]SlotResponse, 0, len(state.Slots))
		hasAvailable := false
		for _, slot := range state.Slots {
			resp.Slots = append(resp.Slots, SlotResponse{Time: slot.Time.String(), Available: slot.Available})
			hasAvailable = hasAvailable || slot.Available
		}
		resp.HasAvailable = &hasAvailable
		resp.SelectedTime = state.SelectedTime.String()

	case bookingFlow.ConfirmDetails:
		resp.Service = serviceModels.FromDomainService(&state.Service)
		resp.Date = state.Date.String()
		resp.SelectedTime = state.Time.String()

	case bookingFlow.Success:
		resp.Appointment = appointmentModels.FromDomainAppointment(&state.Appointment)
	}

	return resp
}
