// Package adapters provides store implementations for the auth feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"admin_backend/internal/feature/auth/domain/entity"
	"admin_backend/internal/feature/auth/usecase"
)

// sessionGorm is a relational implementation of the SessionStore interface.
type sessionGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionGorm implements SessionStore.
var _ usecase.SessionStore = (*sessionGorm)(nil)

// NewSessionGorm creates a new instance of sessionGorm.
func NewSessionGorm(db *gorm.DB) *sessionGorm {
	return &sessionGorm{db: db}
}

// Create persists a new session record to the database.
func (r *sessionGorm) Create(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	session.ID = model.ID
	return nil
}

// DeleteAllByUserID removes every session record for the given user.
// Deleting zero rows is not an error, so repeated calls are idempotent.
func (r *sessionGorm) DeleteAllByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&SessionModel{}).Error
}
