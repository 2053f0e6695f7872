package domain

import (
	"context"
	"errors"
)

type CreateRequest struct {
	CompoundNum string  `json:"compound_num"`
	Plate       string  `json:"plate"`
	IssuedDate  string  `json:"issued_date"`
	IssuedTime  string  `json:"issued_time"`
	Offense     string  `json:"offense"`
	Amount      float64 `json:"amount"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Compound, error)
	// Pay marks the compound paid. Paying twice is a conflict.
	Pay(ctx context.Context, compoundNum string) (Compound, error)
	GetByNum(ctx context.Context, compoundNum string) (Compound, error)
	// Latest returns the most recently paid compound, for the kiosk's
	// "print my last receipt" button.
	Latest(ctx context.Context) (Compound, error)
	List(ctx context.Context) ([]Compound, error)
}

var (
	ErrNotFound    = errors.New("compound_not_found")
	ErrAlreadyPaid = errors.New("compound_already_paid")
	ErrInvalid     = errors.New("invalid_compound")
	ErrDuplicate   = errors.New("compound_num_taken")
)
