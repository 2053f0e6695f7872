package domain

import (
	"context"
	"errors"
)

type CreateOwnerRequest struct {
	IC   string `json:"ic"`
	Name string `json:"name"`
}

type CreateBillRequest struct {
	BillNo     string  `json:"bill_no"`
	OwnerIC    string  `json:"owner_ic"`
	PropertyID int64   `json:"property_id"`
	Year       int     `json:"year"`
	Amount     float64 `json:"amount"`
}

// Payment settles one named bill within a batch.
type Payment struct {
	BillNo     string  `json:"bill_no"`
	PaidAmount float64 `json:"paid_amount"`
	PaymentRef string  `json:"payment_ref"`
}

type PayBatchRequest struct {
	Payments []Payment `json:"payments"`
}

type Service interface {
	CreateOwner(ctx context.Context, req CreateOwnerRequest) (Owner, error)
	CreateBill(ctx context.Context, req CreateBillRequest) (Bill, error)
	GetByBillNo(ctx context.Context, billNo string) (Bill, error)
	// ListByOwnerIC resolves the owner by IC and returns their bills.
	ListByOwnerIC(ctx context.Context, ic string) ([]Bill, error)
	List(ctx context.Context) ([]Bill, error)
	// PayBatch settles every named bill or none of them. An unknown bill
	// number fails the whole batch.
	PayBatch(ctx context.Context, req PayBatchRequest) ([]Bill, error)
}

var (
	ErrBillNotFound  = errors.New("tax_bill_not_found")
	ErrOwnerNotFound = errors.New("tax_owner_not_found")
	ErrInvalid       = errors.New("invalid_tax_request")
	ErrDuplicate     = errors.New("tax_record_taken")
)
