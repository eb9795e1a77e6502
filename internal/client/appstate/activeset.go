package appstate

import "github.com/ddanilov/sitesync/internal/models"

// activeSet - множество неразрешенных конфликтов в памяти с сохранением
// порядка вставки. Дедупликация идет и по id конфликта, и по паре
// (entityType, entityId): на одну сущность не может висеть два активных
// конфликта. Доступ защищается мьютексом Store.
type activeSet struct {
	byID  map[string]*models.SyncConflict
	byKey map[string]string // Key() -> conflict ID
	order []string
}

func newActiveSet() *activeSet {
	return &activeSet{
		byID:  make(map[string]*models.SyncConflict),
		byKey: make(map[string]string),
	}
}

// add inserts a conflict unless one with the same ID, or an active one for
// the same entity, is already present. Reports whether it was inserted.
func (a *activeSet) add(c *models.SyncConflict) bool {
	if _, ok := a.byID[c.ID]; ok {
		return false
	}
	if _, ok := a.byKey[c.Key()]; ok {
		return false
	}

	a.byID[c.ID] = c
	a.byKey[c.Key()] = c.ID
	a.order = append(a.order, c.ID)
	return true
}

// remove drops a conflict by ID. Removing a missing ID is a no-op.
func (a *activeSet) remove(id string) {
	c, ok := a.byID[id]
	if !ok {
		return
	}

	delete(a.byID, id)
	delete(a.byKey, c.Key())
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// list returns the active conflicts in insertion order.
func (a *activeSet) list() []*models.SyncConflict {
	out := make([]*models.SyncConflict, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.byID[id])
	}
	return out
}

func (a *activeSet) size() int {
	return len(a.order)
}

// replace rebuilds the set from the given conflicts, dropping everything
// previously held.
func (a *activeSet) replace(conflicts []*models.SyncConflict) {
	a.byID = make(map[string]*models.SyncConflict, len(conflicts))
	a.byKey = make(map[string]string, len(conflicts))
	a.order = a.order[:0]
	for _, c := range conflicts {
		a.add(c)
	}
}
