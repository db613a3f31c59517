package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdesk/backoffice/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee records. Role checks
// happen in the request gate; this layer validates shape only.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// employeeRequest leaves the optional fields as pointers so an omitted field
// is distinguishable from an empty one and stays NULL in storage.
type employeeRequest struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name" validate:"required"`
	Email         *string `json:"email" validate:"omitempty,email"`
	DateOfJoining *string `json:"date_of_joining"`
	Status        string  `json:"status"`
	DOB           *string `json:"dob"`
	Country       string  `json:"country"`
	State         string  `json:"state"`
	City          string  `json:"city"`
}

type deleteRequest struct {
	ID uint `json:"id" validate:"required"`
}

func (r employeeRequest) input() ports.EmployeeInput {
	return ports.EmployeeInput{
		Name:          r.Name,
		Email:         r.Email,
		DateOfJoining: r.DateOfJoining,
		Status:        r.Status,
		DOB:           r.DOB,
		Country:       r.Country,
		State:         r.State,
		City:          r.City,
	}
}

// List handles GET /api/employee.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}  domain.Employee
// @Router       /api/employee [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Create handles POST /api/employee.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// Update handles PUT /api/employee. The target row id travels in the body,
// matching the UI contract.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      employeeRequest  true  "Employee details including id"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/employee [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), req.ID, req.input()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/employee.
//
// @Summary      Delete an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      deleteRequest  true  "Row id"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/employee [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
