package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/clock"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/repository"
)

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.License{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2026, 1, 15, 10, 0, 0, 0, clock.Malaysia))
	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
		Clock: fake,
	})
	return svc, fake
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		num      string
		wantType string
		wantYear int
	}{
		{"LSN-BIZ2026-001", "Business License", 2026},
		{"LSN-HBR2025-044", "Entertainment / Buskers License", 2025},
		{"LSN-IKL2026-100", "Advertisement License", 2026},
		{"LSN-KOM2024-007", "Composite License", 2024},
		{"LSN-XYZ2026-001", "Unknown", 2026},
	}
	for _, tc := range tests {
		gotType, gotYear, ok := domain.ParseNumber(tc.num)
		require.True(t, ok, tc.num)
		assert.Equal(t, tc.wantType, gotType)
		assert.Equal(t, tc.wantYear, gotYear)
	}

	_, _, ok := domain.ParseNumber("SHORT")
	assert.False(t, ok)
	_, _, ok = domain.ParseNumber("LSN-BIZYEAR-001")
	assert.False(t, ok)
}

func TestCreateParsesTypeAndYear(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), domain.CreateRequest{
		LicenseNum: "lsn-biz2026-001",
		OwnerID:    42,
		Amount:     250,
	})
	require.NoError(t, err)
	assert.Equal(t, "LSN-BIZ2026-001", created.LicenseNum)
	assert.Equal(t, "Business License", created.LicenseType)
	assert.Equal(t, 2026, created.Year)
	assert.Equal(t, domain.StatusUnpaid, created.Status)
	assert.Nil(t, created.StartDate)
	assert.Nil(t, created.EndDate)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{LicenseNum: "", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, err = svc.Create(ctx, domain.CreateRequest{LicenseNum: "LSN-BIZ2026-002", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, err = svc.Create(ctx, domain.CreateRequest{LicenseNum: "BIZ", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, err = svc.Create(ctx, domain.CreateRequest{LicenseNum: "LSN-BIZ2026-003", Amount: 10})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{LicenseNum: "LSN-BIZ2026-003", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPayActivatesFor365Days(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := context.Background()

	_, err := svc.Pay(ctx, "LSN-BIZ2026-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Create(ctx, domain.CreateRequest{LicenseNum: "LSN-BIZ2026-010", OwnerID: 1, Amount: 250})
	require.NoError(t, err)

	paid, err := svc.Pay(ctx, "LSN-BIZ2026-010")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, paid.Status)
	require.NotNil(t, paid.StartDate)
	require.NotNil(t, paid.EndDate)
	assert.True(t, paid.EndDate.Equal(fake.Now().AddDate(0, 0, 365)))

	_, err = svc.Pay(ctx, "LSN-BIZ2026-010")
	assert.ErrorIs(t, err, domain.ErrAlreadyActive)
}

func TestLazyExpiryAndReactivation(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{LicenseNum: "LSN-IKL2026-020", OwnerID: 2, Amount: 100})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, "LSN-IKL2026-020")
	require.NoError(t, err)

	fake.Advance(366 * 24 * time.Hour)

	expired, err := svc.Get(ctx, "LSN-IKL2026-020")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, expired.Status)

	// the flip is persisted, so a list read agrees
	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.StatusExpired, all[0].Status)

	// an expired license can be paid again
	renewed, err := svc.Pay(ctx, "LSN-IKL2026-020")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, renewed.Status)
	assert.True(t, renewed.EndDate.After(fake.Now()))
}
