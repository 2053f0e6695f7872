package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, compound *domain.Compound) error {
	return db.WithContext(ctx).Create(compound).Error
}

func (r *repo) FindByNum(ctx context.Context, db *gorm.DB, compoundNum string) (*domain.Compound, error) {
	var compound domain.Compound
	err := db.WithContext(ctx).
		Where("compound_num = ?", compoundNum).
		Limit(1).
		Find(&compound).Error
	if err != nil {
		return nil, err
	}
	if compound.ID == 0 {
		return nil, nil
	}
	return &compound, nil
}

func (r *repo) FindLatestPaid(ctx context.Context, db *gorm.DB) (*domain.Compound, error) {
	var compound domain.Compound
	err := db.WithContext(ctx).
		Where("status = ?", domain.StatusPaid).
		Order("id DESC").
		Limit(1).
		Find(&compound).Error
	if err != nil {
		return nil, err
	}
	if compound.ID == 0 {
		return nil, nil
	}
	return &compound, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status domain.Status) error {
	return db.WithContext(ctx).
		Model(&domain.Compound{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Compound, error) {
	var compounds []domain.Compound
	err := db.WithContext(ctx).
		Order("issued_date DESC, id DESC").
		Find(&compounds).Error
	return compounds, err
}
