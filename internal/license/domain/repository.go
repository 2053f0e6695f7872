package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, license *License) error
	FindByNum(ctx context.Context, db *gorm.DB, licenseNum string) (*License, error)
	Update(ctx context.Context, db *gorm.DB, license *License) error
	List(ctx context.Context, db *gorm.DB) ([]License, error)
}
