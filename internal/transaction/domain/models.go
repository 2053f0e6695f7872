package domain

import (
	"fmt"
	"time"
)

// Type distinguishes a ledger entry for a fresh session from one for an
// extension of a running session.
type Type string

const (
	TypeNew    Type = "new"
	TypeExtend Type = "extend"
)

// Entry is one immutable ledger row. Every successful start or extend appends
// exactly one entry; entries are never updated apart from the lazily filled
// receipt URL.
type Entry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID   string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"ticket_id"`
	Plate      string    `gorm:"type:varchar(50);index;not null" json:"plate"`
	Terminal   string    `gorm:"type:varchar(50);not null" json:"terminal"`
	Hours      float64   `gorm:"not null" json:"hours"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Type       Type      `gorm:"column:transaction_type;type:varchar(10);not null" json:"type"`
	ReceiptURL string    `gorm:"type:varchar(255)" json:"receipt_url"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "parking_transactions" }

// FormatTicket renders the public ticket number for a ledger row id. The id
// comes from the database sequence, so tickets are unique and increasing
// without a separate counter.
func FormatTicket(id int64) string {
	return fmt.Sprintf("P-%04d", id)
}
