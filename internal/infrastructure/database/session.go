package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/tvules/cat-charity-fund/internal/domain/managers"
)

// Session is the GORM-backed unit of work handed to the entity managers. Adds
// and deletes are buffered until Commit, which applies them in one
// transaction. A session is not safe for concurrent use; callers take a fresh
// one per operation.
type Session struct {
	db      *gorm.DB
	pending []pendingOp
}

type pendingOp struct {
	obj    any
	remove bool
}

func NewSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

// Select runs an equality-AND filtered read into dest. Empty criteria selects
// all rows; no ordering is applied.
func (s *Session) Select(ctx context.Context, dest any, criteria map[string]any) error {
	query := s.db.WithContext(ctx)
	if len(criteria) > 0 {
		query = query.Where(criteria)
	}
	return query.Find(dest).Error
}

// Add stages an insert-or-update of obj for the next Commit.
func (s *Session) Add(obj any) {
	s.pending = append(s.pending, pendingOp{obj: obj})
}

// Delete stages the removal of obj for the next Commit.
func (s *Session) Delete(obj any) {
	s.pending = append(s.pending, pendingOp{obj: obj, remove: true})
}

// Commit applies all staged operations in one transaction, in staging order.
// The pending list is cleared even when the transaction fails; a failed
// commit is not retried.
func (s *Session) Commit(ctx context.Context) error {
	ops := s.pending
	s.pending = nil
	if len(ops) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if op.remove {
				if err := tx.Delete(op.obj).Error; err != nil {
					return err
				}
				continue
			}
			// Save inserts when the primary key is unset and falls back
			// to insert when an update matches no row, which covers
			// entities with caller-assigned identifiers.
			if err := tx.Save(op.obj).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Refresh reloads obj from the store using the primary key already set on it,
// making store-computed values visible.
func (s *Session) Refresh(ctx context.Context, obj any) error {
	return s.db.WithContext(ctx).First(obj).Error
}

// Sessions is the managers.SessionFactory used by the application layer.
type Sessions struct {
	db *gorm.DB
}

func NewSessions(db *gorm.DB) *Sessions {
	return &Sessions{db: db}
}

func (s *Sessions) NewSession() managers.Session {
	return NewSession(s.db)
}
