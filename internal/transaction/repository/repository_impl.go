package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// AppendTx inserts the entry and derives the ticket number from the assigned
// row id before the surrounding transaction commits. Reading max(id)+1 ahead
// of the insert would race; the sequence value cannot.
func (r *repo) AppendTx(ctx context.Context, tx *gorm.DB, entry *domain.Entry) error {
	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		return err
	}
	entry.TicketID = domain.FormatTicket(entry.ID)
	return tx.WithContext(ctx).
		Model(&domain.Entry{}).
		Where("id = ?", entry.ID).
		Update("ticket_id", entry.TicketID).Error
}

func (r *repo) FindByTicket(ctx context.Context, db *gorm.DB, ticketID string) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Limit(1).
		Find(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *repo) FindLatestByPlate(ctx context.Context, db *gorm.DB, plate string) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).
		Where("plate = ?", plate).
		Order("id DESC").
		Limit(1).
		Find(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *repo) FindLatest(ctx context.Context, db *gorm.DB) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).
		Order("id DESC").
		Limit(1).
		Find(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := db.WithContext(ctx).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repo) UpdateReceiptURL(ctx context.Context, db *gorm.DB, id int64, url string) error {
	return db.WithContext(ctx).
		Model(&domain.Entry{}).
		Where("id = ?", id).
		Update("receipt_url", url).Error
}
