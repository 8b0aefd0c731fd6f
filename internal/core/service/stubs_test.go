package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// stubEmployeeRepo is an in-memory EmployeeRepository for service tests.
type stubEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[int64]*domain.Employee), nextID: 1}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) seed(e domain.Employee) *domain.Employee {
	if e.ID == 0 {
		e.ID = r.nextID
		r.nextID++
	} else if e.ID >= r.nextID {
		r.nextID = e.ID + 1
	}
	r.employees[e.ID] = cloneEmployee(&e)
	return cloneEmployee(&e)
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	ids := make([]int64, 0, len(r.employees))
	for id := range r.employees {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Employee, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.employees[id])
	}
	return out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, name, email, department string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if strings.EqualFold(e.Email, email) {
			return nil, domain.ErrEmailTaken
		}
	}
	e := &domain.Employee{
		ID:         r.nextID,
		Name:       name,
		Email:      email,
		Department: department,
		Role:       domain.RoleEmployee,
	}
	r.nextID++
	r.employees[e.ID] = e
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, id int64, name, email, department string) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	e.Name, e.Email, e.Department = name, email, department
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return e, nil
}

func (r *stubEmployeeRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	if e, ok := r.employees[id]; ok {
		e.PasswordHash = passwordHash
	}
	// Absent ids report success, matching the repository contract.
	return nil
}

// stubSessionStore keeps sessions in a plain map with deterministic tokens.
type stubSessionStore struct {
	sessions map[string]int64
	counter  int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]int64)}
}

func (s *stubSessionStore) Create(_ context.Context, employeeID int64) (string, error) {
	s.counter++
	token := fmt.Sprintf("token-%d", s.counter)
	s.sessions[token] = employeeID
	return token, nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (int64, error) {
	id, ok := s.sessions[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return id, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}
