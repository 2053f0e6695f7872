package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertOwner(ctx context.Context, db *gorm.DB, owner *Owner) error
	FindOwnerByIC(ctx context.Context, db *gorm.DB, ic string) (*Owner, error)

	InsertBill(ctx context.Context, db *gorm.DB, bill *Bill) error
	FindBillByNo(ctx context.Context, db *gorm.DB, billNo string) (*Bill, error)
	ListBillsByOwner(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]Bill, error)
	ListBills(ctx context.Context, db *gorm.DB) ([]Bill, error)
	UpdateBill(ctx context.Context, db *gorm.DB, bill *Bill) error
}
