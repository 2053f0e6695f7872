package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Cfg  config.Config
	Repo domain.Repository
}

type service struct {
	db      *gorm.DB
	log     *zap.Logger
	baseURL string
	repo    domain.Repository
}

func New(p Params) domain.Service {
	return &service{
		db:      p.DB,
		log:     p.Log,
		baseURL: strings.TrimRight(p.Cfg.BaseURL, "/"),
		repo:    p.Repo,
	}
}

func (s *service) FindByTicket(ctx context.Context, ticketID string) (domain.Entry, error) {
	entry, err := s.repo.FindByTicket(ctx, s.db, ticketID)
	if err != nil {
		return domain.Entry{}, err
	}
	if entry == nil {
		return domain.Entry{}, domain.ErrNotFound
	}
	return s.withReceiptURL(ctx, *entry), nil
}

func (s *service) FindLatestByPlate(ctx context.Context, plate string) (domain.Entry, error) {
	entry, err := s.repo.FindLatestByPlate(ctx, s.db, plate)
	if err != nil {
		return domain.Entry{}, err
	}
	if entry == nil {
		return domain.Entry{}, domain.ErrNotFound
	}
	return s.withReceiptURL(ctx, *entry), nil
}

func (s *service) Latest(ctx context.Context) (domain.Entry, error) {
	entry, err := s.repo.FindLatest(ctx, s.db)
	if err != nil {
		return domain.Entry{}, err
	}
	if entry == nil {
		return domain.Entry{}, domain.ErrNotFound
	}
	return s.withReceiptURL(ctx, *entry), nil
}

func (s *service) List(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i] = s.withReceiptURL(ctx, entries[i])
	}
	return entries, nil
}

// withReceiptURL backfills the hosted receipt link for rows written before
// the link column existed. A write failure only costs the next read the same
// backfill, so it is logged and swallowed.
func (s *service) withReceiptURL(ctx context.Context, entry domain.Entry) domain.Entry {
	if entry.ReceiptURL != "" {
		return entry
	}
	entry.ReceiptURL = fmt.Sprintf("%s/transactions/receipt/view/%s", s.baseURL, entry.TicketID)
	if err := s.repo.UpdateReceiptURL(ctx, s.db, entry.ID, entry.ReceiptURL); err != nil {
		s.log.Warn("backfill receipt url",
			zap.String("ticket_id", entry.TicketID),
			zap.Error(err),
		)
	}
	return entry
}
