package booking_flow

import (
	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// StateName identifies a wizard step
type StateName string

const (
	StateSelectService  StateName = "select_service"
	StateSelectSlot     StateName = "select_slot"
	StateConfirmDetails StateName = "confirm_details"
	StateSuccess        StateName = "success"
	StateExited         StateName = "exited"
)

// State is one step of the booking wizard. The set of implementations is closed.
type State interface {
	Name() StateName
	isState()
}

// SelectService is the entry step: nothing chosen yet
type SelectService struct{}

// SelectSlot holds the chosen service, the date being browsed and the slots generated for it.
// SelectedTime is empty until an available slot is picked.
type SelectSlot struct {
	Service      domain.Service
	Date         types.DateString
	Slots        []domain.TimeSlot
	SelectedTime types.TimeString
}

// ConfirmDetails can only be reached with a concrete slot
type ConfirmDetails struct {
	Service domain.Service
	Date    types.DateString
	Time    types.TimeString
}

// Success is reached after the appointment was persisted
type Success struct {
	Appointment domain.Appointment
}

// Exited is the terminal marker returned after Exit; the flow is discarded
type Exited struct{}

func (SelectService) Name() StateName  { return StateSelectService }
func (SelectSlot) Name() StateName     { return StateSelectSlot }
func (ConfirmDetails) Name() StateName { return StateConfirmDetails }
func (Success) Name() StateName        { return StateSuccess }
func (Exited) Name() StateName         { return StateExited }

func (SelectService) isState()  {}
func (SelectSlot) isState()     {}
func (ConfirmDetails) isState() {}
func (Success) isState()        {}
func (Exited) isState()         {}

// HasSelection reports whether a slot has been picked
func (s SelectSlot) HasSelection() bool {
	return s.SelectedTime != ""
}
