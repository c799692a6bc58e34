package booking_flow

import "github.com/m04kA/SMC-LuxeBook/pkg/types"

// EventType identifies a user action
type EventType string

const (
	EventChooseService EventType = "choose_service"
	EventChangeDate    EventType = "change_date"
	EventChooseSlot    EventType = "choose_slot"
	EventNext          EventType = "next"
	EventBack          EventType = "back"
	EventSubmit        EventType = "submit"
	EventBookAnother   EventType = "book_another"
	EventExit          EventType = "exit"
)

// Event is a user action applied to a State
type Event interface {
	Type() EventType
}

// ChooseService picks a service on the first step
type ChooseService struct {
	ServiceID string
}

// ChangeDate switches the browsed date and regenerates slots
type ChangeDate struct {
	Date types.DateString
}

// ChooseSlot picks one of the generated slots
type ChooseSlot struct {
	Time types.TimeString
}

// Next moves from slot selection to details
type Next struct{}

// Back returns to the previous step
type Back struct{}

// Submit persists the appointment with the customer details
type Submit struct {
	CustomerName  string
	CustomerPhone string
	Notes         string
}

// BookAnother restarts the wizard after success
type BookAnother struct{}

// Exit leaves the wizard from any step
type Exit struct{}

func (ChooseService) Type() EventType { return EventChooseService }
func (ChangeDate) Type() EventType    { return EventChangeDate }
func (ChooseSlot) Type() EventType    { return EventChooseSlot }
func (Next) Type() EventType          { return EventNext }
func (Back) Type() EventType          { return EventBack }
func (Submit) Type() EventType        { return EventSubmit }
func (BookAnother) Type() EventType   { return EventBookAnother }
func (Exit) Type() EventType          { return EventExit }
