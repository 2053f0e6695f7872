package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/clock"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/domain"
	pkgdb "github.com/aniqelectronic/MeterDemo-Backend-Linux/pkg/db"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Clock clock.Clock
}

type service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &service{
		db:    p.DB,
		log:   p.Log,
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *service) CreateOwner(ctx context.Context, req domain.CreateOwnerRequest) (domain.Owner, error) {
	ic := strings.TrimSpace(req.IC)
	name := strings.TrimSpace(req.Name)
	if ic == "" || name == "" {
		return domain.Owner{}, domain.ErrInvalid
	}

	owner := domain.Owner{
		ID:   s.genID.Generate(),
		IC:   ic,
		Name: name,
	}
	if err := s.repo.InsertOwner(ctx, s.db, &owner); err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Owner{}, domain.ErrDuplicate
		}
		return domain.Owner{}, err
	}
	return owner, nil
}

func (s *service) CreateBill(ctx context.Context, req domain.CreateBillRequest) (domain.Bill, error) {
	billNo := strings.TrimSpace(req.BillNo)
	if billNo == "" {
		return domain.Bill{}, domain.ErrInvalid
	}
	if req.Amount <= 0 {
		return domain.Bill{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalid)
	}

	owner, err := s.repo.FindOwnerByIC(ctx, s.db, strings.TrimSpace(req.OwnerIC))
	if err != nil {
		return domain.Bill{}, err
	}
	if owner == nil {
		return domain.Bill{}, domain.ErrOwnerNotFound
	}

	bill := domain.Bill{
		ID:         s.genID.Generate(),
		BillNo:     billNo,
		OwnerID:    owner.ID,
		PropertyID: req.PropertyID,
		Year:       req.Year,
		Amount:     req.Amount,
		Status:     domain.StatusUnpaid,
	}
	if err := s.repo.InsertBill(ctx, s.db, &bill); err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Bill{}, domain.ErrDuplicate
		}
		return domain.Bill{}, err
	}

	s.log.Info("tax bill created",
		zap.String("bill_no", billNo),
		zap.String("owner_ic", req.OwnerIC),
	)
	return bill, nil
}

func (s *service) GetByBillNo(ctx context.Context, billNo string) (domain.Bill, error) {
	bill, err := s.repo.FindBillByNo(ctx, s.db, billNo)
	if err != nil {
		return domain.Bill{}, err
	}
	if bill == nil {
		return domain.Bill{}, domain.ErrBillNotFound
	}
	return *bill, nil
}

func (s *service) ListByOwnerIC(ctx context.Context, ic string) ([]domain.Bill, error) {
	owner, err := s.repo.FindOwnerByIC(ctx, s.db, strings.TrimSpace(ic))
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrOwnerNotFound
	}
	return s.repo.ListBillsByOwner(ctx, s.db, owner.ID)
}

func (s *service) List(ctx context.Context) ([]domain.Bill, error) {
	return s.repo.ListBills(ctx, s.db)
}

// PayBatch settles the named bills in one transaction. A single unknown bill
// number rolls back the whole batch, so a kiosk retry never finds half-paid
// state.
func (s *service) PayBatch(ctx context.Context, req domain.PayBatchRequest) ([]domain.Bill, error) {
	if len(req.Payments) == 0 {
		return nil, domain.ErrInvalid
	}

	now := s.clock.Now()
	paid := make([]domain.Bill, 0, len(req.Payments))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, payment := range req.Payments {
			bill, err := s.repo.FindBillByNo(ctx, tx, payment.BillNo)
			if err != nil {
				return err
			}
			if bill == nil {
				return fmt.Errorf("%w: %s", domain.ErrBillNotFound, payment.BillNo)
			}

			amount := payment.PaidAmount
			ref := payment.PaymentRef
			when := now
			bill.Status = domain.StatusPaid
			bill.PaidAmount = &amount
			bill.PaymentRef = &ref
			bill.PaidDate = &when
			if err := s.repo.UpdateBill(ctx, tx, bill); err != nil {
				return err
			}
			paid = append(paid, *bill)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("tax bills paid", zap.Int("count", len(paid)))
	return paid, nil
}
