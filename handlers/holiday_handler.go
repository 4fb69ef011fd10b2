package handlers

import (
	"context"
	"net/http"
	"time"

	middleware "hrmproject/middlewares"
	"hrmproject/models"
	service "hrmproject/services"
	"hrmproject/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HolidayHandler struct {
	service service.HolidayService
}

func NewHolidayHandler(service service.HolidayService) *HolidayHandler {
	return &HolidayHandler{
		service: service,
	}
}

func (h *HolidayHandler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var holiday models.Holiday
	if err := utils.DecodeAndValidate(w, r, &holiday); err != nil {
		return
	}

	tenantID := middleware.GetTenantFromContext(r.Context())
	username := middleware.GetUsernameFromContext(r.Context())
	holiday.Metadata.CreatedBy = username
	holiday.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateHoliday(ctx, tenantID, &holiday)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Holiday created successfully", created, http.StatusCreated)
}

func (h *HolidayHandler) GetHolidayByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid holiday ID format", http.StatusBadRequest)
		return
	}

	tenantID := middleware.GetTenantFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	holiday, err := h.service.GetHolidayByID(ctx, tenantID, objectID)
	if err != nil {
		utils.HandleMessageResponse(w, "Holiday not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, "Holiday retrieved successfully", holiday, http.StatusOK)
}

func (h *HolidayHandler) GetAllHolidays(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	holidays, err := h.service.GetAllHolidays(ctx, tenantID)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Holidays retrieved successfully", holidays, http.StatusOK)
}

// GetHolidayCalendar returns every holiday with its resolved occurrence, for
// calendar highlighting.
func (h *HolidayHandler) GetHolidayCalendar(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	calendar, err := h.service.GetHolidayCalendar(ctx, tenantID)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Holiday calendar retrieved successfully", calendar, http.StatusOK)
}

func (h *HolidayHandler) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid holiday ID format", http.StatusBadRequest)
		return
	}

	var holiday models.Holiday
	if err := utils.DecodeAndValidate(w, r, &holiday); err != nil {
		return
	}

	tenantID := middleware.GetTenantFromContext(r.Context())
	holiday.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateHoliday(ctx, tenantID, objectID, &holiday)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Holiday updated successfully", updated, http.StatusOK)
}

func (h *HolidayHandler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid holiday ID format", http.StatusBadRequest)
		return
	}

	tenantID := middleware.GetTenantFromContext(r.Context())
	username := middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.SoftDeleteHoliday(ctx, tenantID, objectID, username); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Holiday deleted successfully", http.StatusOK)
}

func (h *HolidayHandler) GetHolidayTypes(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	types, err := h.service.GetHolidayTypes(ctx, tenantID)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Holiday types retrieved successfully", types, http.StatusOK)
}
