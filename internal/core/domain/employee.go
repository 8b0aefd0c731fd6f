package domain

// Employee roles. Guards compare these with plain string equality; there is
// no hierarchy — an admin does not implicitly satisfy a manager check.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Employee models a single row of the employees table. The password digest is
// never serialized into responses.
type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}
