package get_settings

import (
	"net/http"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
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

// Handle GET /api/v1/business и GET /api/v1/admin/settings
// Публичный endpoint - шапка главной страницы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET %s - Failed to get settings: error=%v", r.URL.Path, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET %s - Settings retrieved successfully: name=%s", r.URL.Path, result.Name)
	handlers.RespondJSON(w, http.StatusOK, result)
}
