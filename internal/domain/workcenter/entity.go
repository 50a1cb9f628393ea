package workcenter

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("work center name must not be empty")
	ErrInvalidDepartment  = errors.New("unknown department")
	ErrInvalidCapacity    = errors.New("daily capacity must be positive")
	ErrInvalidConcurrency = errors.New("concurrent capacity must be positive")
)

type Department string

const (
	DepartmentMachining Department = "machining"
	DepartmentAssembly  Department = "assembly"
	DepartmentFinishing Department = "finishing"
	DepartmentLogistics Department = "logistics"
)

func NewDepartment(value string) (Department, error) {
	d := Department(strings.ToLower(strings.TrimSpace(value)))
	if !d.IsValid() {
		return "", ErrInvalidDepartment
	}
	return d, nil
}

func (d Department) IsValid() bool {
	switch d {
	case DepartmentMachining, DepartmentAssembly, DepartmentFinishing, DepartmentLogistics:
		return true
	default:
		return false
	}
}

func (d Department) String() string {
	return string(d)
}

// WorkCenter is a production station with finite daily minute capacity and a
// concurrency limit on parallel slots.
type WorkCenter struct {
	id                 uuid.UUID
	name               string
	department         Department
	dailyCapacityMin   int
	concurrentCapacity int
	active             bool
}

func NewWorkCenter(name string, department Department, dailyCapacityMin, concurrentCapacity int) (*WorkCenter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !department.IsValid() {
		return nil, ErrInvalidDepartment
	}
	if dailyCapacityMin <= 0 {
		return nil, ErrInvalidCapacity
	}
	if concurrentCapacity <= 0 {
		return nil, ErrInvalidConcurrency
	}

	return &WorkCenter{
		id:                 uuid.New(),
		name:               name,
		department:         department,
		dailyCapacityMin:   dailyCapacityMin,
		concurrentCapacity: concurrentCapacity,
		active:             true,
	}, nil
}

func ReconstructWorkCenter(id uuid.UUID, name string, department Department, dailyCapacityMin, concurrentCapacity int, active bool) *WorkCenter {
	return &WorkCenter{
		id:                 id,
		name:               name,
		department:         department,
		dailyCapacityMin:   dailyCapacityMin,
		concurrentCapacity: concurrentCapacity,
		active:             active,
	}
}

func (w *WorkCenter) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	w.name = name
	return nil
}

func (w *WorkCenter) ChangeDepartment(department Department) error {
	if !department.IsValid() {
		return ErrInvalidDepartment
	}
	w.department = department
	return nil
}

func (w *WorkCenter) ChangeCapacity(dailyCapacityMin, concurrentCapacity int) error {
	if dailyCapacityMin <= 0 {
		return ErrInvalidCapacity
	}
	if concurrentCapacity <= 0 {
		return ErrInvalidConcurrency
	}
	w.dailyCapacityMin = dailyCapacityMin
	w.concurrentCapacity = concurrentCapacity
	return nil
}

// Deactivate hides the center from new scheduling; historical slots remain.
func (w *WorkCenter) Deactivate() {
	w.active = false
}

func (w *WorkCenter) Reactivate() {
	w.active = true
}

func (w *WorkCenter) ID() uuid.UUID           { return w.id }
func (w *WorkCenter) Name() string            { return w.name }
func (w *WorkCenter) Department() Department  { return w.department }
func (w *WorkCenter) DailyCapacityMin() int   { return w.dailyCapacityMin }
func (w *WorkCenter) ConcurrentCapacity() int { return w.concurrentCapacity }
func (w *WorkCenter) IsActive() bool          { return w.active }
