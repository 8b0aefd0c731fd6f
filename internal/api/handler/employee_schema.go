package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createEmployeeRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Department string `json:"department" validate:"required"`
}

type updateEmployeeRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Department string `json:"department" validate:"required"`
}

type loginRequest struct {
	EmployeeID int64  `json:"employeeId" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type resetPasswordRequest struct {
	EmployeeID  int64  `json:"employeeId"  validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// --- Response types ---

// employeeResponse is the public view of an employee. The password digest is
// write-only and never appears here.
type employeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

type deleteEmployeeResponse struct {
	Message         string           `json:"message"`
	DeletedEmployee employeeResponse `json:"deletedEmployee"`
}

type loginResponse struct {
	Message string           `json:"message"`
	User    employeeResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
