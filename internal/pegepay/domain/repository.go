package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	LatestToken(ctx context.Context, db *gorm.DB) (*Token, error)
	// SaveToken updates the existing row in place or inserts the first one.
	SaveToken(ctx context.Context, db *gorm.DB, token *Token) error

	FindUnprocessedOrder(ctx context.Context, db *gorm.DB, terminalID string) (*Order, error)
	FindLastOrder(ctx context.Context, db *gorm.DB, terminalID, prefix string) (*Order, error)
	InsertOrder(ctx context.Context, db *gorm.DB, order *Order) error
	UpdateOrder(ctx context.Context, db *gorm.DB, order *Order) error
	UpdateOrderByNo(ctx context.Context, db *gorm.DB, orderNo string, fields map[string]any) error
	ListOrders(ctx context.Context, db *gorm.DB) ([]Order, error)
}
