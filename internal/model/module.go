package model

import "sort"

// Module is a tag-like record employees can be given access to.
// Modules are read-only from this service's point of view.
type Module struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ModuleSet normalizes modules into set form: unique by ID, ordered by ID,
// never nil.
func ModuleSet(modules []Module) []Module {
	byID := make(map[int64]Module, len(modules))
	for _, m := range modules {
		byID[m.ID] = m
	}

	set := make([]Module, 0, len(byID))
	for _, m := range byID {
		set = append(set, m)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].ID < set[j].ID })

	return set
}

// DiffModules returns the modules present in after but not before (added)
// and present in before but not after (removed), both ordered by ID.
func DiffModules(before, after []Module) (added, removed []Module) {
	beforeIDs := make(map[int64]struct{}, len(before))
	for _, m := range before {
		beforeIDs[m.ID] = struct{}{}
	}
	afterIDs := make(map[int64]struct{}, len(after))
	for _, m := range after {
		afterIDs[m.ID] = struct{}{}
	}

	for _, m := range ModuleSet(after) {
		if _, ok := beforeIDs[m.ID]; !ok {
			added = append(added, m)
		}
	}
	for _, m := range ModuleSet(before) {
		if _, ok := afterIDs[m.ID]; !ok {
			removed = append(removed, m)
		}
	}
	return added, removed
}

// DiffIDs is the identifier form of DiffModules, used when rewriting
// join-table rows.
func DiffIDs(current, wanted []int64) (added, removed []int64) {
	currentSet := make(map[int64]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	wantedSet := make(map[int64]struct{}, len(wanted))
	for _, id := range wanted {
		wantedSet[id] = struct{}{}
	}

	for id := range wantedSet {
		if _, ok := currentSet[id]; !ok {
			added = append(added, id)
		}
	}
	for id := range currentSet {
		if _, ok := wantedSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })

	return added, removed
}
