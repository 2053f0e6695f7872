package service

import (
	"context"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/billing"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/clock"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
	txdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Repo   domain.Repository
	Ledger txdomain.Ledger
	Calc   billing.Calculator
	Clock  clock.Clock
}

type service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   domain.Repository
	ledger txdomain.Ledger
	calc   billing.Calculator
	clock  clock.Clock
}

func New(p Params) domain.Service {
	return &service{
		db:     p.DB,
		log:    p.Log,
		repo:   p.Repo,
		ledger: p.Ledger,
		calc:   p.Calc,
		clock:  p.Clock,
	}
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func (s *service) LookupActive(ctx context.Context, plate string) (domain.Session, error) {
	plate = normalizePlate(plate)
	if plate == "" {
		return domain.Session{}, domain.ErrInvalidPlate
	}

	session, err := s.repo.FindLatestPaid(ctx, s.db, plate, false)
	if err != nil {
		return domain.Session{}, err
	}
	if session == nil || !domain.IsActive(*session, s.clock.Now()) {
		return domain.Session{}, domain.ErrNoActiveSession
	}
	return *session, nil
}

func (s *service) LatestSession(ctx context.Context, plate string) (domain.Session, error) {
	plate = normalizePlate(plate)
	if plate == "" {
		return domain.Session{}, domain.ErrInvalidPlate
	}

	session, err := s.repo.FindLatestPaid(ctx, s.db, plate, false)
	if err != nil {
		return domain.Session{}, err
	}
	if session == nil {
		return domain.Session{}, domain.ErrNoActiveSession
	}
	return *session, nil
}

// Start opens a new paid session and appends the ledger entry in one
// transaction. The per-plate lock makes concurrent starts for the same plate
// take turns, so the second caller sees the first one's row and is rejected.
func (s *service) Start(ctx context.Context, req domain.StartRequest) (domain.Session, error) {
	plate := normalizePlate(req.Plate)
	if plate == "" {
		return domain.Session{}, domain.ErrInvalidPlate
	}
	if req.Hours <= 0 {
		return domain.Session{}, domain.ErrInvalidHours
	}

	now := s.clock.Now().In(clock.Malaysia)
	amount := s.calc.Amount(req.Hours)

	var created domain.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.LockPlate(ctx, tx, plate); err != nil {
			return err
		}

		existing, err := s.repo.FindLatestPaid(ctx, tx, plate, true)
		if err != nil {
			return err
		}
		if existing != nil && domain.IsActive(*existing, now) {
			return &domain.AlreadyActiveError{Until: existing.TimeOut}
		}

		created = domain.Session{
			Plate:         plate,
			Terminal:      req.Terminal,
			TimeUsed:      req.Hours,
			PaymentStatus: domain.PaymentStatusPaid,
			TimeIn:        now,
			TimeOut:       now.Add(domain.Duration(req.Hours)),
			Amount:        amount,
		}
		if err := s.repo.Insert(ctx, tx, &created); err != nil {
			return err
		}

		entry := txdomain.Entry{
			Plate:     plate,
			Terminal:  req.Terminal,
			Hours:     req.Hours,
			Amount:    amount,
			Type:      txdomain.TypeNew,
			CreatedAt: now,
		}
		return s.ledger.AppendTx(ctx, tx, &entry)
	})
	if err != nil {
		return domain.Session{}, err
	}

	s.log.Info("parking started",
		zap.String("plate", plate),
		zap.Float64("hours", req.Hours),
		zap.Time("time_out", created.TimeOut),
	)
	return created, nil
}

// Extend pushes TimeOut forward by the purchased hours. The ledger entry
// carries only the increment; the session row carries the cumulative totals.
func (s *service) Extend(ctx context.Context, req domain.ExtendRequest) (domain.Session, error) {
	plate := normalizePlate(req.Plate)
	if plate == "" {
		return domain.Session{}, domain.ErrInvalidPlate
	}
	if req.ExtraHours <= 0 {
		return domain.Session{}, domain.ErrInvalidHours
	}

	now := s.clock.Now().In(clock.Malaysia)

	var updated domain.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.LockPlate(ctx, tx, plate); err != nil {
			return err
		}

		existing, err := s.repo.FindLatestPaid(ctx, tx, plate, true)
		if err != nil {
			return err
		}
		if existing == nil || !domain.IsActive(*existing, now) {
			return domain.ErrNoActiveSession
		}

		existing.TimeUsed += req.ExtraHours
		existing.TimeOut = existing.TimeOut.Add(domain.Duration(req.ExtraHours))
		existing.Amount = s.calc.Amount(existing.TimeUsed)
		if req.Terminal != "" {
			existing.Terminal = req.Terminal
		}
		if err := s.repo.Update(ctx, tx, existing); err != nil {
			return err
		}
		updated = *existing

		entry := txdomain.Entry{
			Plate:     plate,
			Terminal:  updated.Terminal,
			Hours:     req.ExtraHours,
			Amount:    s.calc.Amount(req.ExtraHours),
			Type:      txdomain.TypeExtend,
			CreatedAt: now,
		}
		return s.ledger.AppendTx(ctx, tx, &entry)
	})
	if err != nil {
		return domain.Session{}, err
	}

	s.log.Info("parking extended",
		zap.String("plate", plate),
		zap.Float64("extra_hours", req.ExtraHours),
		zap.Time("time_out", updated.TimeOut),
	)
	return updated, nil
}

func (s *service) List(ctx context.Context) ([]domain.Session, error) {
	return s.repo.List(ctx, s.db)
}
