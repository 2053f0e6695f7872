package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/billing"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/clock"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
	parkingrepo "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/repository"
	txdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
	txrepo "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/repository"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Session{}, &txdomain.Entry{}))

	fake := clock.NewFakeClock(time.Date(2026, 3, 14, 9, 0, 0, 0, clock.Malaysia))
	svc := New(Params{
		DB:     db,
		Log:    zap.NewNop(),
		Repo:   parkingrepo.Provide(),
		Ledger: txrepo.Provide(),
		Calc:   billing.Calculator{RatePerHour: 0.65},
		Clock:  fake,
	})
	return svc, db, fake
}

func ledgerEntries(t *testing.T, db *gorm.DB) []txdomain.Entry {
	t.Helper()
	var entries []txdomain.Entry
	require.NoError(t, db.Order("id ASC").Find(&entries).Error)
	return entries
}

func TestStartCreatesSessionAndLedgerEntry(t *testing.T) {
	svc, db, fake := newTestService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, domain.StartRequest{Plate: "wxy1234", Hours: 2, Terminal: "T01"})
	require.NoError(t, err)

	assert.Equal(t, "WXY1234", session.Plate)
	assert.Equal(t, domain.PaymentStatusPaid, session.PaymentStatus)
	assert.InDelta(t, 1.30, session.Amount, 1e-9)
	assert.True(t, session.TimeOut.Equal(fake.Now().Add(2*time.Hour)))

	entries := ledgerEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, "P-0001", entries[0].TicketID)
	assert.Equal(t, txdomain.TypeNew, entries[0].Type)
	assert.Equal(t, "WXY1234", entries[0].Plate)
	assert.InDelta(t, 1.30, entries[0].Amount, 1e-9)
}

func TestStartRejectsWhileActive(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Start(ctx, domain.StartRequest{Plate: "ABC1", Hours: 1, Terminal: "T01"})
	require.NoError(t, err)

	_, err = svc.Start(ctx, domain.StartRequest{Plate: "abc1", Hours: 2, Terminal: "T02"})
	var active *domain.AlreadyActiveError
	require.ErrorAs(t, err, &active)
	assert.True(t, active.Until.Equal(first.TimeOut))

	// the rejected call must not have written anything
	assert.Len(t, ledgerEntries(t, db), 1)
	var count int64
	db.Model(&domain.Session{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestStartAfterExpiryOpensNewSession(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.StartRequest{Plate: "ABC1", Hours: 1, Terminal: "T01"})
	require.NoError(t, err)

	fake.Advance(61 * time.Minute)

	session, err := svc.Start(ctx, domain.StartRequest{Plate: "ABC1", Hours: 1, Terminal: "T01"})
	require.NoError(t, err)
	assert.True(t, session.TimeOut.After(fake.Now()))
}

func TestExtendAccumulatesSessionAndAppendsIncrement(t *testing.T) {
	svc, db, fake := newTestService(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, domain.StartRequest{Plate: "JKR55", Hours: 1, Terminal: "T01"})
	require.NoError(t, err)

	fake.Advance(30 * time.Minute)

	extended, err := svc.Extend(ctx, domain.ExtendRequest{Plate: "JKR55", ExtraHours: 1.5, Terminal: "T02"})
	require.NoError(t, err)

	// session row carries cumulative totals
	assert.InDelta(t, 2.5, extended.TimeUsed, 1e-9)
	assert.InDelta(t, 1.63, extended.Amount, 1e-9)
	assert.True(t, extended.TimeOut.Equal(started.TimeOut.Add(90*time.Minute)))
	assert.Equal(t, "T02", extended.Terminal)

	// ledger carries one entry per event, each with the event's own amount
	entries := ledgerEntries(t, db)
	require.Len(t, entries, 2)
	assert.Equal(t, txdomain.TypeExtend, entries[1].Type)
	assert.InDelta(t, 1.5, entries[1].Hours, 1e-9)
	assert.InDelta(t, 0.98, entries[1].Amount, 1e-9)

	sum := entries[0].Amount + entries[1].Amount
	assert.InDelta(t, extended.Amount, sum, 0.01)
}

func TestExtendWithoutActiveSession(t *testing.T) {
	svc, db, fake := newTestService(t)
	ctx := context.Background()

	_, err := svc.Extend(ctx, domain.ExtendRequest{Plate: "NOPE1", ExtraHours: 1})
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	_, err = svc.Start(ctx, domain.StartRequest{Plate: "NOPE1", Hours: 1, Terminal: "T01"})
	require.NoError(t, err)
	fake.Advance(2 * time.Hour)

	_, err = svc.Extend(ctx, domain.ExtendRequest{Plate: "NOPE1", ExtraHours: 1})
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	assert.Len(t, ledgerEntries(t, db), 1)
}

func TestValidationWritesNothing(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.StartRequest{Plate: "  ", Hours: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidPlate)

	_, err = svc.Start(ctx, domain.StartRequest{Plate: "ABC1", Hours: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidHours)

	_, err = svc.Extend(ctx, domain.ExtendRequest{Plate: "ABC1", ExtraHours: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidHours)

	assert.Empty(t, ledgerEntries(t, db))
	var count int64
	db.Model(&domain.Session{}).Count(&count)
	assert.Zero(t, count)
}

func TestLookupActive(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	_, err := svc.LookupActive(ctx, "ZZZ9")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	started, err := svc.Start(ctx, domain.StartRequest{Plate: "ZZZ9", Hours: 1, Terminal: "T01"})
	require.NoError(t, err)

	found, err := svc.LookupActive(ctx, "zzz9")
	require.NoError(t, err)
	assert.Equal(t, started.ID, found.ID)

	fake.Advance(61 * time.Minute)
	_, err = svc.LookupActive(ctx, "ZZZ9")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestTicketNumbersAreUniqueAndIncreasing(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := svc.Start(ctx, domain.StartRequest{
			Plate:    fmt.Sprintf("CAR%02d", i),
			Hours:    1,
			Terminal: "T01",
		})
		require.NoError(t, err)
	}

	entries := ledgerEntries(t, db)
	require.Len(t, entries, 10)
	seen := map[string]bool{}
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("P-%04d", i+1), entry.TicketID)
		assert.False(t, seen[entry.TicketID])
		seen[entry.TicketID] = true
	}
}
