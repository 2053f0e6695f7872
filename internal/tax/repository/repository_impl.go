package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertOwner(ctx context.Context, db *gorm.DB, owner *domain.Owner) error {
	return db.WithContext(ctx).Create(owner).Error
}

func (r *repo) FindOwnerByIC(ctx context.Context, db *gorm.DB, ic string) (*domain.Owner, error) {
	var owner domain.Owner
	err := db.WithContext(ctx).
		Where("ic = ?", ic).
		Limit(1).
		Find(&owner).Error
	if err != nil {
		return nil, err
	}
	if owner.ID == 0 {
		return nil, nil
	}
	return &owner, nil
}

func (r *repo) InsertBill(ctx context.Context, db *gorm.DB, bill *domain.Bill) error {
	return db.WithContext(ctx).Create(bill).Error
}

func (r *repo) FindBillByNo(ctx context.Context, db *gorm.DB, billNo string) (*domain.Bill, error) {
	var bill domain.Bill
	err := db.WithContext(ctx).
		Where("bill_no = ?", billNo).
		Limit(1).
		Find(&bill).Error
	if err != nil {
		return nil, err
	}
	if bill.ID == 0 {
		return nil, nil
	}
	return &bill, nil
}

func (r *repo) ListBillsByOwner(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("year DESC, id ASC").
		Find(&bills).Error
	return bills, err
}

func (r *repo) ListBills(ctx context.Context, db *gorm.DB) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := db.WithContext(ctx).
		Order("id ASC").
		Find(&bills).Error
	return bills, err
}

func (r *repo) UpdateBill(ctx context.Context, db *gorm.DB, bill *domain.Bill) error {
	return db.WithContext(ctx).
		Model(&domain.Bill{}).
		Where("id = ?", bill.ID).
		Updates(map[string]any{
			"status":      bill.Status,
			"paid_amount": bill.PaidAmount,
			"payment_ref": bill.PaymentRef,
			"paid_date":   bill.PaidDate,
		}).Error
}
