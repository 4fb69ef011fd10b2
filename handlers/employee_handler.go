package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	middleware "hrmproject/middlewares"
	"hrmproject/models"
	service "hrmproject/services"
	"hrmproject/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeHandler struct {
	service service.EmployeeService
}

func NewEmployeeHandler(service service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
	}
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := utils.DecodeAndValidate(w, r, &employee); err != nil {
		return
	}

	tenantID := middleware.GetTenantFromContext(r.Context())
	username := middleware.GetUsernameFromContext(r.Context())
	employee.Metadata.CreatedBy = username
	employee.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateEmployee(ctx, tenantID, &employee)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Employee created successfully", created, http.StatusCreated)
}

func (h *EmployeeHandler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid employee ID format", http.StatusBadRequest)
		return
	}

	tenantID := middleware.GetTenantFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.service.GetEmployeeByID(ctx, tenantID, objectID)
	if err != nil {
		utils.HandleMessageResponse(w, "Employee not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, "Employee retrieved successfully", employee, http.StatusOK)
}

func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantFromContext(r.Context())
	status := r.URL.Query().Get("status")
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	pageSize, _ := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 64)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.service.ListEmployees(ctx, tenantID, status, page, pageSize)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Employees retrieved successfully", result, http.StatusOK)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid employee ID format", http.StatusBadRequest)
		return
	}

	var employee models.Employee
	if err := utils.DecodeAndValidate(w, r, &employee); err != nil {
		return
	}

	tenantID := middleware.GetTenantFromContext(r.Context())
	employee.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateEmployee(ctx, tenantID, objectID, &employee)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Employee updated successfully", updated, http.StatusOK)
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid employee ID format", http.StatusBadRequest)
		return
	}

	tenantID := middleware.GetTenantFromContext(r.Context())
	username := middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.SoftDeleteEmployee(ctx, tenantID, objectID, username); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Employee deleted successfully", http.StatusOK)
}
