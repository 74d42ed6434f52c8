package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "staffaudit/internal/errors"
	"staffaudit/internal/models"
)

// employeeService handles employee persistence.
type employeeService struct {
	db *gorm.DB
}

// NewEmployeeService creates a new EmployeeServicer.
func NewEmployeeService(db *gorm.DB) EmployeeServicer {
	return &employeeService{db: db}
}

// GetEmployeeByID retrieves an employee by ID
func (s *employeeService) GetEmployeeByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &employee, nil
}

// CreateEmployee inserts a new row. Any ID on the input is discarded so the
// store always assigns it.
func (s *employeeService) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if employee == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "employee is required")
	}

	created := &models.Employee{}
	created.Overwrite(employee.Fields())

	if err := s.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return created, nil
}

// UpdateEmployee writes every column of an existing employee.
func (s *employeeService) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	if employee == nil || employee.ID == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "employee id is required")
	}

	// Select("*") writes zero values too, so cleared fields are persisted.
	// Updates never inserts; a row deleted since the read reports not found.
	result := s.db.WithContext(ctx).Model(employee).Select("*").Omit("created_at").Updates(employee)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}

// DeleteEmployee removes the row matching the employee's ID.
func (s *employeeService) DeleteEmployee(ctx context.Context, employee *models.Employee) error {
	if employee == nil || employee.ID == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "employee id is required")
	}

	result := s.db.WithContext(ctx).Delete(&models.Employee{}, employee.ID)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}
