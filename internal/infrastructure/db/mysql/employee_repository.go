package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// mysqlErrDuplicateEntry is the server error code for a violated unique key.
const mysqlErrDuplicateEntry = 1062

// EmployeeRepository persists employees in the employees table. Every method
// issues a single parameterized statement bounded by the acquire timeout, so
// a saturated pool fails the request instead of queueing indefinitely.
type EmployeeRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewEmployeeRepository(db *sql.DB, timeout time.Duration) *EmployeeRepository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &EmployeeRepository{db: db, timeout: timeout}
}

const employeeColumns = "id, name, email, department, role, password_hash"

func scanEmployee(row interface{ Scan(...any) error }) (*domain.Employee, error) {
	var e domain.Employee
	var hash sql.NullString
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Role, &hash); err != nil {
		return nil, err
	}
	e.PasswordHash = hash.String
	return &e, nil
}

// List returns all employees in physical id order.
func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, "SELECT "+employeeColumns+" FROM employees ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	e, err := scanEmployee(r.db.QueryRowContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return e, nil
}

// Create inserts a new employee with the default role and returns the stored
// row. Email uniqueness is enforced by the database, not here.
func (r *EmployeeRepository) Create(ctx context.Context, name, email, department string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO employees (name, email, department, role) VALUES (?, ?, ?, ?)",
		name, email, department, domain.RoleEmployee)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Update replaces the writable fields of an existing employee and returns the
// stored row. Concurrent updates are not serialized — last writer wins.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, name, email, department string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx,
		"UPDATE employees SET name = ?, email = ?, department = ? WHERE id = ?",
		name, email, department, id)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the row physically and returns it as it was stored.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("delete employee: %w", err)
	}
	return e, nil
}

// UpdatePassword stores a new digest. An id that matches no row leaves the
// table untouched and still reports success.
func (r *EmployeeRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx,
		"UPDATE employees SET password_hash = ? WHERE id = ?", passwordHash, id); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
