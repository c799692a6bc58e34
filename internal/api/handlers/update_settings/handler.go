package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	"github.com/m04kA/SMC-LuxeBook/internal/service/settings"
	"github.com/m04kA/SMC-LuxeBook/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные настройки: нужно название и время в формате HH:MM"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /admin/settings - Failed to save settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings saved: name=%s, hours=%s-%s",
		result.Name, result.OpenTime, result.CloseTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
