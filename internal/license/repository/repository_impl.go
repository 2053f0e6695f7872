package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, license *domain.License) error {
	return db.WithContext(ctx).Create(license).Error
}

func (r *repo) FindByNum(ctx context.Context, db *gorm.DB, licenseNum string) (*domain.License, error) {
	var license domain.License
	err := db.WithContext(ctx).
		Where("license_num = ?", licenseNum).
		Limit(1).
		Find(&license).Error
	if err != nil {
		return nil, err
	}
	if license.ID == 0 {
		return nil, nil
	}
	return &license, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, license *domain.License) error {
	return db.WithContext(ctx).
		Model(&domain.License{}).
		Where("id = ?", license.ID).
		Updates(map[string]any{
			"status":     license.Status,
			"start_date": license.StartDate,
			"end_date":   license.EndDate,
		}).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.License, error) {
	var licenses []domain.License
	err := db.WithContext(ctx).
		Order("id ASC").
		Find(&licenses).Error
	return licenses, err
}
