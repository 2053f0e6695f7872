package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	AppendTx(ctx context.Context, tx *gorm.DB, entry *Entry) error
	FindByTicket(ctx context.Context, db *gorm.DB, ticketID string) (*Entry, error)
	FindLatestByPlate(ctx context.Context, db *gorm.DB, plate string) (*Entry, error)
	FindLatest(ctx context.Context, db *gorm.DB) (*Entry, error)
	List(ctx context.Context, db *gorm.DB) ([]Entry, error)
	UpdateReceiptURL(ctx context.Context, db *gorm.DB, id int64, url string) error
}
