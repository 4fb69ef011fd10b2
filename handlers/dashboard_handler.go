package handlers

import (
	"context"
	"net/http"
	"time"

	middleware "hrmproject/middlewares"
	"hrmproject/models"
	service "hrmproject/services"
	"hrmproject/utils"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// GetDashboardStats serves GET /api/dashboard/stats. The tenant comes from the
// token, the optional ?year= parameter scopes joiner/training statistics. A
// failed partition resolution answers 409 with done=false; partial statistic
// failures still answer 200 with done=true.
func (h *DashboardHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantFromContext(r.Context())
	year := utils.ParseYearParam(r)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	snapshot, err := h.service.GetDashboardStats(ctx, tenantID, year)
	if err != nil {
		utils.HandleDashboardResponse(w, models.DashboardResponse{
			Done:  false,
			Error: err.Error(),
		}, http.StatusConflict)
		return
	}

	utils.HandleDashboardResponse(w, models.DashboardResponse{
		Done: true,
		Data: snapshot,
	}, http.StatusOK)
}
