package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, compound *Compound) error
	FindByNum(ctx context.Context, db *gorm.DB, compoundNum string) (*Compound, error)
	FindLatestPaid(ctx context.Context, db *gorm.DB) (*Compound, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status Status) error
	List(ctx context.Context, db *gorm.DB) ([]Compound, error)
}
