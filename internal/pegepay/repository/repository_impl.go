package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) LatestToken(ctx context.Context, db *gorm.DB) (*domain.Token, error) {
	var token domain.Token
	err := db.WithContext(ctx).
		Order("id DESC").
		Limit(1).
		Find(&token).Error
	if err != nil {
		return nil, err
	}
	if token.ID == 0 {
		return nil, nil
	}
	return &token, nil
}

func (r *repo) SaveToken(ctx context.Context, db *gorm.DB, token *domain.Token) error {
	if token.ID != 0 {
		return db.WithContext(ctx).
			Model(&domain.Token{}).
			Where("id = ?", token.ID).
			Updates(map[string]any{
				"access_token":     token.AccessToken,
				"token_expired_at": token.TokenExpiredAt,
			}).Error
	}
	return db.WithContext(ctx).Create(token).Error
}

func (r *repo) FindUnprocessedOrder(ctx context.Context, db *gorm.DB, terminalID string) (*domain.Order, error) {
	var order domain.Order
	err := db.WithContext(ctx).
		Where("terminal_id = ? AND order_status = ?", terminalID, domain.OrderStatusUnprocessed).
		Order("id DESC").
		Limit(1).
		Find(&order).Error
	if err != nil {
		return nil, err
	}
	if order.ID == 0 {
		return nil, nil
	}
	return &order, nil
}

func (r *repo) FindLastOrder(ctx context.Context, db *gorm.DB, terminalID, prefix string) (*domain.Order, error) {
	var order domain.Order
	err := db.WithContext(ctx).
		Where("terminal_id = ? AND order_no LIKE ?", terminalID, prefix+"%").
		Order("id DESC").
		Limit(1).
		Find(&order).Error
	if err != nil {
		return nil, err
	}
	if order.ID == 0 {
		return nil, nil
	}
	return &order, nil
}

func (r *repo) InsertOrder(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Create(order).Error
}

func (r *repo) UpdateOrder(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"order_amount": order.OrderAmount,
			"order_status": order.OrderStatus,
			"store_id":     order.StoreID,
		}).Error
}

func (r *repo) UpdateOrderByNo(ctx context.Context, db *gorm.DB, orderNo string, fields map[string]any) error {
	return db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("order_no = ?", orderNo).
		Updates(fields).Error
}

func (r *repo) ListOrders(ctx context.Context, db *gorm.DB) ([]domain.Order, error) {
	var orders []domain.Order
	err := db.WithContext(ctx).
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}
