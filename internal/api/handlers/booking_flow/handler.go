package booking_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	bookingFlow "github.com/m04kA/SMC-LuxeBook/internal/usecase/booking_flow"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEvent       = "некорректное событие"
	msgFlowNotFound       = "сценарий записи не найден или истек"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidDate        = "нельзя выбрать прошедшую дату"
	msgInvalidDetails     = "нужно указать имя и телефон клиента"
	msgIllegalTransition  = "действие недоступно на текущем шаге"
	msgSlotNotSelected    = "сначала выберите время"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
	msgSubmissionInFlight = "запись уже отправляется, дождитесь результата"
	msgCancelled          = "запрос отменен"
)

type Handler struct {
	registry FlowRegistry
	logger   Logger
}

func NewHandler(registry FlowRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Start POST /api/v1/booking-flows
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	snapshot := h.registry.Start()

	h.logger.Info("POST /booking-flows - Flow started: flow_id=%s", snapshot.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromSnapshot(snapshot))
}

// Get GET /api/v1/booking-flows/{flowId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	snapshot, err := h.registry.Get(flowID)
	if err != nil {
		h.respondError(w, "GET /booking-flows/{id}", flowID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}

// ApplyEvent POST /api/v1/booking-flows/{flowId}/events
func (h *Handler) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-flows/{id}/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := req.ToEvent()
	if err != nil {
		h.logger.Warn("POST /booking-flows/{id}/events - Invalid event: flow_id=%s, error=%v", flowID, err)
		handlers.RespondBadRequest(w, msgInvalidEvent)
		return
	}

	snapshot, err := h.registry.Apply(r.Context(), flowID, event)
	if err != nil {
		h.respondError(w, "POST /booking-flows/{id}/events", flowID, err)
		return
	}

	h.logger.Info("POST /booking-flows/{id}/events - Event applied: flow_id=%s, event=%s, state=%s",
		flowID, event.Type(), snapshot.State.Name())
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}

func (h *Handler) respondError(w http.ResponseWriter, route, flowID string, err error) {
	switch {
	case errors.Is(err, bookingFlow.ErrFlowNotFound):
		h.logger.Warn("%s - Flow not found: flow_id=%s", route, flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)

	case errors.Is(err, bookingFlow.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: flow_id=%s", route, flowID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, bookingFlow.ErrInvalidDate):
		h.logger.Warn("%s - Invalid date: flow_id=%s, error=%v", route, flowID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, bookingFlow.ErrInvalidDetails):
		h.logger.Warn("%s - Invalid details: flow_id=%s, error=%v", route, flowID, err)
		handlers.RespondBadRequest(w, msgInvalidDetails)

	case errors.Is(err, bookingFlow.ErrIllegalTransition):
		h.logger.Warn("%s - Illegal transition: flow_id=%s, error=%v", route, flowID, err)
		handlers.RespondConflict(w, msgIllegalTransition)

	case errors.Is(err, bookingFlow.ErrSlotNotSelected):
		h.logger.Warn("%s - Slot not selected: flow_id=%s", route, flowID)
		handlers.RespondConflict(w, msgSlotNotSelected)

	case errors.Is(err, bookingFlow.ErrSlotNotAvailable):
		h.logger.Warn("%s - Slot not available: flow_id=%s, error=%v", route, flowID, err)
		handlers.RespondConflict(w, msgSlotNotAvailable)

	case errors.Is(err, bookingFlow.ErrSubmissionInFlight):
		h.logger.Warn("%s - Submission in flight: flow_id=%s", route, flowID)
		handlers.RespondConflict(w, msgSubmissionInFlight)

	case errors.Is(err, bookingFlow.ErrSubmissionCancelled):
		h.logger.Warn("%s - Submission cancelled: flow_id=%s, error=%v", route, flowID, err)
		handlers.RespondBadRequest(w, msgCancelled)

	default:
		h.logger.Error("%s - Failed to process flow: flow_id=%s, error=%v", route, flowID, err)
		handlers.RespondInternalError(w)
	}
}
