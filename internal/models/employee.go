package models

// Employee is a staff record held in the relational Record Store.
type Employee struct {
	Base
	Name              string `gorm:"size:200" json:"name"`
	Address           string `gorm:"size:300" json:"address"`
	Extension         string `gorm:"size:20" json:"extension"`
	ProfessionalEmail string `gorm:"size:254" json:"professional_email"`
	Department        string `gorm:"size:100;index" json:"department"`
	Salary            int64  `gorm:"not null;default:0" json:"salary"`
}

// EmployeeFields holds the mutable attributes of an Employee.
type EmployeeFields struct {
	Name              string
	Address           string
	Extension         string
	ProfessionalEmail string
	Department        string
	Salary            int64
}

// Overwrite replaces every mutable field with the given values. The ID and
// bookkeeping timestamps are left untouched.
func (e *Employee) Overwrite(f EmployeeFields) {
	e.Name = f.Name
	e.Address = f.Address
	e.Extension = f.Extension
	e.ProfessionalEmail = f.ProfessionalEmail
	e.Department = f.Department
	e.Salary = f.Salary
}

// Fields returns the mutable attributes of the employee.
func (e *Employee) Fields() EmployeeFields {
	return EmployeeFields{
		Name:              e.Name,
		Address:           e.Address,
		Extension:         e.Extension,
		ProfessionalEmail: e.ProfessionalEmail,
		Department:        e.Department,
		Salary:            e.Salary,
	}
}
