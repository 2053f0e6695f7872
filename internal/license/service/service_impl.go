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
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
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

func (s *service) Create(ctx context.Context, req domain.CreateRequest) (domain.License, error) {
	num := strings.ToUpper(strings.TrimSpace(req.LicenseNum))
	if num == "" {
		return domain.License{}, domain.ErrInvalid
	}
	if req.Amount <= 0 {
		return domain.License{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalid)
	}

	licenseType, year, ok := domain.ParseNumber(num)
	if !ok {
		return domain.License{}, fmt.Errorf("%w: cannot read year from %q", domain.ErrInvalid, num)
	}

	license := domain.License{
		ID:          s.genID.Generate(),
		LicenseNum:  num,
		LicenseType: licenseType,
		OwnerID:     req.OwnerID,
		Year:        year,
		Amount:      req.Amount,
		Status:      domain.StatusUnpaid,
	}
	if err := s.repo.Insert(ctx, s.db, &license); err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.License{}, domain.ErrDuplicate
		}
		return domain.License{}, err
	}

	s.log.Info("license created",
		zap.String("license_num", num),
		zap.String("license_type", licenseType),
		zap.Int("year", year),
	)
	return license, nil
}

func (s *service) Pay(ctx context.Context, licenseNum string) (domain.License, error) {
	license, err := s.refreshed(ctx, licenseNum)
	if err != nil {
		return domain.License{}, err
	}
	if license.Status == domain.StatusActive {
		return domain.License{}, domain.ErrAlreadyActive
	}

	start := s.clock.Now()
	end := start.AddDate(0, 0, domain.ValidityDays)
	license.Status = domain.StatusActive
	license.StartDate = &start
	license.EndDate = &end
	if err := s.repo.Update(ctx, s.db, &license); err != nil {
		return domain.License{}, err
	}

	s.log.Info("license activated",
		zap.String("license_num", licenseNum),
		zap.Time("end_date", end),
	)
	return license, nil
}

func (s *service) Get(ctx context.Context, licenseNum string) (domain.License, error) {
	return s.refreshed(ctx, licenseNum)
}

func (s *service) List(ctx context.Context) ([]domain.License, error) {
	licenses, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	for i := range licenses {
		licenses[i] = s.expireIfDue(ctx, licenses[i])
	}
	return licenses, nil
}

// refreshed loads the license and applies the lazy expiry check.
func (s *service) refreshed(ctx context.Context, licenseNum string) (domain.License, error) {
	license, err := s.repo.FindByNum(ctx, s.db, licenseNum)
	if err != nil {
		return domain.License{}, err
	}
	if license == nil {
		return domain.License{}, domain.ErrNotFound
	}
	return s.expireIfDue(ctx, *license), nil
}

func (s *service) expireIfDue(ctx context.Context, license domain.License) domain.License {
	if license.Status != domain.StatusActive || !license.Expired(s.clock.Now()) {
		return license
	}
	license.Status = domain.StatusExpired
	if err := s.repo.Update(ctx, s.db, &license); err != nil {
		s.log.Warn("persist license expiry",
			zap.String("license_num", license.LicenseNum),
			zap.Error(err),
		)
	}
	return license
}
