package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Ledger appends entries inside a caller-owned transaction. The parking
// service uses it so that the session write and the ledger append commit or
// roll back together.
type Ledger interface {
	// AppendTx inserts the entry and assigns entry.TicketID from the row id
	// within the same transaction.
	AppendTx(ctx context.Context, tx *gorm.DB, entry *Entry) error
}

// Service is the read side of the ledger, backing receipts and history views.
type Service interface {
	FindByTicket(ctx context.Context, ticketID string) (Entry, error)
	// FindLatestByPlate returns the most recent entry for the plate.
	FindLatestByPlate(ctx context.Context, plate string) (Entry, error)
	// Latest returns the most recent entry across all plates.
	Latest(ctx context.Context) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

var ErrNotFound = errors.New("transaction_not_found")
