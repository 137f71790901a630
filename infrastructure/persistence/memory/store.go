// Package memory keeps the catalog and user data in process memory. It
// backs the "memory" database driver and the HTTP tests.
package memory

import (
	"sync"

	"finflix/domain/repository"
)

// table is an insertion-ordered map guarded by a RWMutex. Records are
// copied in and out through clone so callers never share slices with it.
type table[D any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]D
	clone func(D) D
}

func newTable[D any](clone func(D) D) *table[D] {
	if clone == nil {
		clone = func(d D) D { return d }
	}
	return &table[D]{rows: make(map[string]D), clone: clone}
}

// insert stores d under id. clash, when set, plays the role of a unique
// index: any existing record it accepts makes the insert fail.
func (t *table[D]) insert(id string, d D, clash func(D) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return repository.ErrDuplicate
	}
	if t.clashes(id, clash) {
		return repository.ErrDuplicate
	}
	t.rows[id] = t.clone(d)
	t.order = append(t.order, id)
	return nil
}

func (t *table[D]) get(id string) (D, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d, ok := t.rows[id]
	if !ok {
		var zero D
		return zero, repository.ErrNotFound
	}
	return t.clone(d), nil
}

// find returns the first record, in insertion order, that match accepts.
func (t *table[D]) find(match func(D) bool) (D, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if d := t.rows[id]; match(d) {
			return t.clone(d), nil
		}
	}
	var zero D
	return zero, repository.ErrNotFound
}

func (t *table[D]) getMany(ids []string) []D {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]D, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if d, ok := t.rows[id]; ok {
			out = append(out, t.clone(d))
		}
	}
	return out
}

func (t *table[D]) all() []D {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]D, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.clone(t.rows[id]))
	}
	return out
}

func (t *table[D]) clashes(selfID string, clash func(D) bool) bool {
	if clash == nil {
		return false
	}
	for id, row := range t.rows {
		if id != selfID && clash(row) {
			return true
		}
	}
	return false
}

// update applies fn to the stored record under the write lock. fn returns
// the record to store, or an error that aborts the write.
func (t *table[D]) update(id string, fn func(current D) (D, error), clash func(D) bool) (D, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	current, ok := t.rows[id]
	if !ok {
		var zero D
		return zero, repository.ErrNotFound
	}
	next, err := fn(t.clone(current))
	if err != nil {
		var zero D
		return zero, err
	}
	if t.clashes(id, clash) {
		var zero D
		return zero, repository.ErrDuplicate
	}
	t.rows[id] = t.clone(next)
	return t.clone(next), nil
}

func (t *table[D]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
