package routes

import (
	"net/http"

	"hrmproject/handlers"
	"hrmproject/middlewares"
)

func SetupRoutes(
	dashboardHandler *handlers.DashboardHandler,
	holidayHandler *handlers.HolidayHandler,
	employeeHandler *handlers.EmployeeHandler,
	jwtSecret string,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Apply JWT middleware to all routes; the token carries the company
	// (tenant) scope every query runs under.
	jwtMiddleware := middlewares.JWTMiddleware(jwtSecret)

	// Dashboard
	mux.Handle("GET /api/dashboard/stats", jwtMiddleware(http.HandlerFunc(dashboardHandler.GetDashboardStats)))

	// Holidays
	mux.Handle("POST /api/holidays", jwtMiddleware(http.HandlerFunc(holidayHandler.CreateHoliday)))
	mux.Handle("GET /api/holidays", jwtMiddleware(http.HandlerFunc(holidayHandler.GetAllHolidays)))
	mux.Handle("GET /api/holidays/calendar", jwtMiddleware(http.HandlerFunc(holidayHandler.GetHolidayCalendar)))
	mux.Handle("GET /api/holidays/types", jwtMiddleware(http.HandlerFunc(holidayHandler.GetHolidayTypes)))
	mux.Handle("GET /api/holidays/{id}", jwtMiddleware(http.HandlerFunc(holidayHandler.GetHolidayByID)))
	mux.Handle("PUT /api/holidays/{id}", jwtMiddleware(http.HandlerFunc(holidayHandler.UpdateHoliday)))
	mux.Handle("DELETE /api/holidays/{id}", jwtMiddleware(http.HandlerFunc(holidayHandler.DeleteHoliday)))

	// Employees
	mux.Handle("POST /api/employees", jwtMiddleware(http.HandlerFunc(employeeHandler.CreateEmployee)))
	mux.Handle("GET /api/employees", jwtMiddleware(http.HandlerFunc(employeeHandler.ListEmployees)))
	mux.Handle("GET /api/employees/{id}", jwtMiddleware(http.HandlerFunc(employeeHandler.GetEmployeeByID)))
	mux.Handle("PUT /api/employees/{id}", jwtMiddleware(http.HandlerFunc(employeeHandler.UpdateEmployee)))
	mux.Handle("DELETE /api/employees/{id}", jwtMiddleware(http.HandlerFunc(employeeHandler.DeleteEmployee)))

	return mux
}
