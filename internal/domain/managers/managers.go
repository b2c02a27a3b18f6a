// Package managers provides the generic entity manager every repository is
// built on: create/get/filter/update/delete for a single entity type, with the
// actual store access delegated to a caller-supplied Session.
package managers

import "context"

// Session is the per-operation handle to the persistence store. The manager
// never opens or closes one; callers pass a fresh session into every call.
type Session interface {
	// Select runs an equality-AND filtered read into dest (a *[]*T).
	// Empty criteria means all rows, in store order.
	Select(ctx context.Context, dest any, criteria map[string]any) error
	// Add stages an insert-or-update for the next Commit.
	Add(obj any)
	// Delete stages a removal for the next Commit.
	Delete(obj any)
	// Commit applies everything staged since the last Commit in one
	// transaction.
	Commit(ctx context.Context) error
	// Refresh reloads obj's fields from the store by primary key.
	Refresh(ctx context.Context, obj any) error
}

// SessionFactory hands out a fresh Session per operation.
type SessionFactory interface {
	NewSession() Session
}

// Definition describes an entity schema: construction from a field map plus
// named field access. Implementations whitelist fields explicitly instead of
// using reflection.
type Definition[T any] interface {
	// New builds an entity from the field map. Every key must name a
	// declared field; unknown keys fail with UnknownFieldError.
	New(fields map[string]any) (*T, error)
	// Has reports whether the named field is declared.
	Has(field string) bool
	// Get returns the named field's value, false if undeclared.
	Get(obj *T, field string) (any, bool)
	// Set overwrites the named field. It returns false when the field is
	// undeclared or the value has the wrong type, leaving obj untouched.
	Set(obj *T, field string, value any) bool
}

// Manager mediates between callers and one persisted entity type. It holds no
// state beyond the bound Definition; every operation commits its own unit of
// work on the session it is given.
type Manager[T any] struct {
	def Definition[T]
}

// New binds a manager to an entity definition. A nil definition is a fatal
// configuration error.
func New[T any](def Definition[T]) (*Manager[T], error) {
	if def == nil {
		return nil, ErrNoDefinition
	}
	return &Manager[T]{def: def}, nil
}

// Definition returns the bound entity definition.
func (m *Manager[T]) Definition() Definition[T] {
	return m.def
}

// Create builds an entity from the field map and persists it. All keys must
// name declared fields. The returned instance carries the store-assigned
// identity and any store-computed defaults.
func (m *Manager[T]) Create(ctx context.Context, sess Session, fields map[string]any) (*T, error) {
	obj, err := m.def.New(fields)
	if err != nil {
		return nil, err
	}
	return m.save(ctx, sess, obj, true)
}

// Get returns the first entity matching the criteria, or nil when nothing
// matches. Absence is not an error.
func (m *Manager[T]) Get(ctx context.Context, sess Session, criteria map[string]any) (*T, error) {
	objs, err := m.find(ctx, sess, criteria)
	if err != nil || len(objs) == 0 {
		return nil, err
	}
	return objs[0], nil
}

// GetAll returns every persisted entity, in store order.
func (m *Manager[T]) GetAll(ctx context.Context, sess Session) ([]*T, error) {
	return m.find(ctx, sess, nil)
}

// Filter returns every entity matching all criteria entries, in store order.
func (m *Manager[T]) Filter(ctx context.Context, sess Session, criteria map[string]any) ([]*T, error) {
	return m.find(ctx, sess, criteria)
}

// Update overwrites obj's declared fields with the field map's values and
// persists the result. Keys that do not name a declared field are skipped
// silently. obj is mutated in place and returned with post-commit state.
func (m *Manager[T]) Update(ctx context.Context, sess Session, obj *T, fields map[string]any) (*T, error) {
	for field, value := range fields {
		if m.def.Has(field) {
			m.def.Set(obj, field, value)
		}
	}
	return m.save(ctx, sess, obj, true)
}

// Delete removes obj from the store and returns the detached instance; its
// fields stay readable in memory.
func (m *Manager[T]) Delete(ctx context.Context, sess Session, obj *T) (*T, error) {
	sess.Delete(obj)
	if err := sess.Commit(ctx); err != nil {
		return nil, err
	}
	return obj, nil
}

// find is the sole read path: an equality-AND select over the criteria map.
func (m *Manager[T]) find(ctx context.Context, sess Session, criteria map[string]any) ([]*T, error) {
	var objs []*T
	if err := sess.Select(ctx, &objs, criteria); err != nil {
		return nil, err
	}
	return objs, nil
}

// save stages obj, commits immediately, and unless suppressed reloads obj so
// store-computed values (identity, defaults) are visible to the caller.
func (m *Manager[T]) save(ctx context.Context, sess Session, obj *T, refresh bool) (*T, error) {
	sess.Add(obj)
	if err := sess.Commit(ctx); err != nil {
		return nil, err
	}
	if refresh {
		if err := sess.Refresh(ctx, obj); err != nil {
			return nil, err
		}
	}
	return obj, nil
}
