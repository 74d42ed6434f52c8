package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "staffaudit/internal/errors"
	"staffaudit/internal/logger"
	"staffaudit/internal/middleware"
	"staffaudit/internal/models"
	"staffaudit/internal/services"
)

// EmployeeHandler serves the employee resource. Every successful mutation is
// committed to the Record Store first and then mirrored to the audit log.
type EmployeeHandler struct {
	employeeService services.EmployeeServicer
	auditService    services.AuditServicer
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService services.EmployeeServicer, auditService services.AuditServicer) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, auditService: auditService}
}

// EmployeeRequest is the payload for creating or replacing an employee.
// An id in the body is ignored.
type EmployeeRequest struct {
	Name              string `json:"name" binding:"max=200" example:"Ana"`
	Address           string `json:"address" binding:"max=300" example:"Rua das Flores, 10"`
	Extension         string `json:"extension" binding:"max=20" example:"204"`
	ProfessionalEmail string `json:"professional_email" binding:"omitempty,email,max=254" example:"ana@company.com"`
	Department        string `json:"department" binding:"max=100,partition_key" example:"HR"`
	Salary            int64  `json:"salary" binding:"gte=0" example:"5000"`
}

func (r EmployeeRequest) fields() models.EmployeeFields {
	return models.EmployeeFields{
		Name:              r.Name,
		Address:           r.Address,
		Extension:         r.Extension,
		ProfessionalEmail: r.ProfessionalEmail,
		Department:        r.Department,
		Salary:            r.Salary,
	}
}

// EmployeeResponse wraps a single employee.
type EmployeeResponse struct {
	Employee models.Employee `json:"employee"`
}

// GetEmployee handles retrieving a specific employee.
// @Summary     Get employee by ID
// @Description Get a specific employee by ID
// @Tags        employees
// @Produce     json
// @Param       id path int true "Employee ID"
// @Success     200 {object} EmployeeResponse "Employee details"
// @Failure     400 {object} ErrorResponse "Invalid employee ID"
// @Failure     404 {object} ErrorResponse "Employee not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

// CreateEmployee handles the creation of a new employee.
// @Summary     Create an employee
// @Description Create an employee and record an Insertion entry in the audit log
// @Tags        employees
// @Accept      json
// @Produce     json
// @Param       request body EmployeeRequest true "Employee details"
// @Success     201 {object} EmployeeResponse "Employee created"
// @Header      201 {string} Location "URL of the new employee"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error or audit log failure"
// @Router      /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	employee := &models.Employee{}
	employee.Overwrite(req.fields())

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), employee)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recordAudit(c, models.AuditActionInsertion, employee); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+strconv.FormatUint(uint64(employee.ID), 10))
	c.JSON(http.StatusCreated, gin.H{"employee": employee})
}

// UpdateEmployee handles replacing an employee's attributes.
// @Summary     Update employee
// @Description Overwrite every mutable field of an employee and record an Update entry in the audit log
// @Tags        employees
// @Accept      json
// @Param       id      path int             true "Employee ID"
// @Param       request body EmployeeRequest true "Replacement employee details"
// @Success     200 "Employee updated"
// @Failure     400 {object} ErrorResponse "Invalid input or employee ID"
// @Failure     404 {object} ErrorResponse "Employee not found"
// @Failure     500 {object} ErrorResponse "Server error or audit log failure"
// @Router      /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ctx := c.Request.Context()
	employee, err := h.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	employee.Overwrite(req.fields())
	if err := h.employeeService.UpdateEmployee(ctx, employee); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recordAudit(c, models.AuditActionUpdate, employee); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// DeleteEmployee handles removing an employee.
// @Summary     Delete employee
// @Description Delete an employee and record a Removal entry in the audit log
// @Tags        employees
// @Param       id path int true "Employee ID"
// @Success     204 "Employee deleted"
// @Failure     400 {object} ErrorResponse "Invalid employee ID"
// @Failure     404 {object} ErrorResponse "Employee not found"
// @Failure     500 {object} ErrorResponse "Server error or audit log failure"
// @Router      /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	employee, err := h.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.employeeService.DeleteEmployee(ctx, employee); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recordAudit(c, models.AuditActionRemoval, employee); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// recordAudit mirrors a committed mutation into the audit log. On failure the
// two stores have diverged; that is logged with enough detail to reconcile by
// hand and reported as AUDIT_LOG_FAILED rather than a generic error.
func (h *EmployeeHandler) recordAudit(c *gin.Context, action models.AuditAction, employee *models.Employee) error {
	entry, err := h.auditService.Record(c.Request.Context(), action, employee)
	if err == nil {
		return nil
	}

	requestID, _ := c.Get(middleware.RequestIDKey)
	fields := []interface{}{
		"inconsistent", true,
		"action", action,
		"employee_id", employee.ID,
		"department", employee.Department,
		"request_id", requestID,
		"error", err.Error(),
	}
	if entry != nil {
		fields = append(fields, "row_key", entry.RowKey, "snapshot", entry.Snapshot)
	}
	logger.Get().Errorw("audit log write failed after employee change was committed", fields...)

	return apperrors.Wrap(apperrors.ErrAuditLogFailed, err)
}
