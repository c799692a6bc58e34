package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
// Инсайт в ответе обычно в статусе loading, клиент опрашивает /admin/dashboard/insight
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to load dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Dashboard loaded: appointments=%d, revenue=%.2f",
		result.TotalCount, result.Revenue)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleInsight GET /api/v1/admin/dashboard/insight
func (h *Handler) HandleInsight(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Insight())
}
