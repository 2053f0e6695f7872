package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// LockPlate takes a transaction-scoped advisory lock keyed by plate. Two
// concurrent starts for the same plate would otherwise both observe "no
// active session" and both insert. A partial unique index cannot express
// "active" because it depends on now(), so serialization is the strategy.
func (r *repo) LockPlate(ctx context.Context, tx *gorm.DB, plate string) error {
	switch tx.Dialector.Name() {
	case "postgres":
		return tx.WithContext(ctx).Exec(
			`SELECT pg_advisory_xact_lock(hashtext(?))`, plate,
		).Error
	case "mysql":
		return tx.WithContext(ctx).Exec(
			`SELECT GET_LOCK(CONCAT('parking:', ?), 5)`, plate,
		).Error
	default:
		// sqlite allows a single writer; the transaction itself serializes.
		return nil
	}
}

func (r *repo) FindLatestPaid(ctx context.Context, db *gorm.DB, plate string, forUpdate bool) (*domain.Session, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("plate = ? AND payment_status = ?", plate, domain.PaymentStatusPaid).
		Order("time_out DESC")
	if forUpdate && db.Dialector.Name() != "sqlite" {
		stmt = stmt.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var session domain.Session
	err := stmt.Limit(1).Find(&session).Error
	if err != nil {
		return nil, err
	}
	if session.ID == 0 {
		return nil, nil
	}
	return &session, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).Create(session).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"time_used": session.TimeUsed,
			"time_out":  session.TimeOut,
			"amount":    session.Amount,
			"terminal":  session.Terminal,
		}).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Session, error) {
	var sessions []domain.Session
	err := db.WithContext(ctx).
		Model(&domain.Session{}).
		Order("id ASC").
		Find(&sessions).Error
	return sessions, err
}
