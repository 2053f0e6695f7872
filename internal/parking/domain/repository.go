package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// LockPlate serializes concurrent start/extend calls for one plate for
	// the remainder of the surrounding transaction.
	LockPlate(ctx context.Context, tx *gorm.DB, plate string) error
	// FindLatestPaid returns the paid session with the greatest TimeOut for
	// the plate, or nil. With forUpdate the row is locked where the dialect
	// supports it.
	FindLatestPaid(ctx context.Context, db *gorm.DB, plate string, forUpdate bool) (*Session, error)
	Insert(ctx context.Context, db *gorm.DB, session *Session) error
	Update(ctx context.Context, db *gorm.DB, session *Session) error
	List(ctx context.Context, db *gorm.DB) ([]Session, error)
}
