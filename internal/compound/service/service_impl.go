package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/domain"
	pkgdb "github.com/aniqelectronic/MeterDemo-Backend-Linux/pkg/db"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &service{
		db:    p.DB,
		log:   p.Log,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateRequest) (domain.Compound, error) {
	num := strings.TrimSpace(req.CompoundNum)
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if num == "" || plate == "" {
		return domain.Compound{}, domain.ErrInvalid
	}
	if req.Amount <= 0 {
		return domain.Compound{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalid)
	}

	issuedDate, err := time.Parse("2006-01-02", req.IssuedDate)
	if err != nil {
		return domain.Compound{}, fmt.Errorf("%w: issued_date %q", domain.ErrInvalid, req.IssuedDate)
	}

	compound := domain.Compound{
		ID:          s.genID.Generate(),
		CompoundNum: num,
		Plate:       plate,
		IssuedDate:  issuedDate,
		IssuedTime:  req.IssuedTime,
		Offense:     req.Offense,
		Amount:      req.Amount,
		Status:      domain.StatusUnpaid,
	}
	if err := s.repo.Insert(ctx, s.db, &compound); err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Compound{}, domain.ErrDuplicate
		}
		return domain.Compound{}, err
	}

	s.log.Info("compound created",
		zap.String("compound_num", num),
		zap.String("plate", plate),
	)
	return compound, nil
}

func (s *service) Pay(ctx context.Context, compoundNum string) (domain.Compound, error) {
	compound, err := s.repo.FindByNum(ctx, s.db, compoundNum)
	if err != nil {
		return domain.Compound{}, err
	}
	if compound == nil {
		return domain.Compound{}, domain.ErrNotFound
	}
	if compound.Status == domain.StatusPaid {
		return domain.Compound{}, domain.ErrAlreadyPaid
	}

	if err := s.repo.UpdateStatus(ctx, s.db, compound.ID, domain.StatusPaid); err != nil {
		return domain.Compound{}, err
	}
	compound.Status = domain.StatusPaid

	s.log.Info("compound paid", zap.String("compound_num", compoundNum))
	return *compound, nil
}

func (s *service) GetByNum(ctx context.Context, compoundNum string) (domain.Compound, error) {
	compound, err := s.repo.FindByNum(ctx, s.db, compoundNum)
	if err != nil {
		return domain.Compound{}, err
	}
	if compound == nil {
		return domain.Compound{}, domain.ErrNotFound
	}
	return *compound, nil
}

func (s *service) Latest(ctx context.Context) (domain.Compound, error) {
	compound, err := s.repo.FindLatestPaid(ctx, s.db)
	if err != nil {
		return domain.Compound{}, err
	}
	if compound == nil {
		return domain.Compound{}, domain.ErrNotFound
	}
	return *compound, nil
}

func (s *service) List(ctx context.Context) ([]domain.Compound, error) {
	return s.repo.List(ctx, s.db)
}
