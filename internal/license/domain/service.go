package domain

import (
	"context"
	"errors"
)

type CreateRequest struct {
	LicenseNum string  `json:"licensenum"`
	OwnerID    int64   `json:"owner_id"`
	Amount     float64 `json:"amount"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (License, error)
	// Pay activates the license for 365 days. Paying an already active
	// license is a conflict; paying an expired one reactivates it.
	Pay(ctx context.Context, licenseNum string) (License, error)
	Get(ctx context.Context, licenseNum string) (License, error)
	List(ctx context.Context) ([]License, error)
}

var (
	ErrNotFound      = errors.New("license_not_found")
	ErrAlreadyActive = errors.New("license_already_active")
	ErrInvalid       = errors.New("invalid_license")
	ErrDuplicate     = errors.New("license_num_taken")
)
