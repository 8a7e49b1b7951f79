package get_revenue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	getRevenue "github.com/m04kA/SMC-GymConsole/internal/usecase/get_revenue"
)

const msgInvalidRange = "некорректный период"

type Handler struct {
	useCase GetRevenueUseCase
	logger  Logger
}

func NewHandler(useCase GetRevenueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/revenue
// Query params: from, to (YYYY-MM-DD, по умолчанию текущий месяц), branchId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req := &getRevenue.Request{
		From:     values.Get("from"),
		To:       values.Get("to"),
		BranchID: values.Get("branchId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getRevenue.ErrInvalidInput):
			h.logger.Warn("GET /analytics/revenue - Invalid range: from=%s, to=%s, error=%v", req.From, req.To, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /analytics/revenue - Failed to compute revenue: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/revenue - Revenue computed: from=%s, to=%s, net=%.2f",
		result.From, result.To, result.Totals.Net)
	handlers.RespondJSON(w, http.StatusOK, result)
}
