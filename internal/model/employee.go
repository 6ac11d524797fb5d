package model

// Employee is the primary record. ID is zero until the employee is first
// persisted; Modules is kept in set form (see ModuleSet).
type Employee struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Modules []Module `json:"modules"`
}

// NewEmployee returns a transient employee with no modules.
func NewEmployee(name string) *Employee {
	return &Employee{
		Name:    name,
		Modules: []Module{},
	}
}

// IsPersisted reports whether the employee has been assigned an ID by storage.
func (e *Employee) IsPersisted() bool {
	return e.ID != 0
}

// SetModules replaces the whole association set.
func (e *Employee) SetModules(modules []Module) {
	e.Modules = ModuleSet(modules)
}

// ModuleIDs returns the associated module IDs in ascending order.
func (e *Employee) ModuleIDs() []int64 {
	ids := make([]int64, 0, len(e.Modules))
	for _, m := range ModuleSet(e.Modules) {
		ids = append(ids, m.ID)
	}
	return ids
}

// Clone returns a deep copy, so callers can hand out an employee without
// sharing its module slice.
func (e *Employee) Clone() *Employee {
	clone := &Employee{ID: e.ID, Name: e.Name}
	clone.Modules = append(make([]Module, 0, len(e.Modules)), e.Modules...)
	return clone
}

// EmployeeInput is the data accepted by create and update.
//
// A nil ModuleIDs means "no module set given": create assigns none and
// update keeps the existing set. A non-nil empty slice clears the set.
type EmployeeInput struct {
	Name      string
	ModuleIDs []int64
}

// AccessChange describes how an employee's module access moved during a write.
type AccessChange struct {
	EmployeeID   int64
	EmployeeName string
	Added        []Module
	Removed      []Module
}

// Empty reports whether nothing was granted or revoked.
func (c AccessChange) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}
