package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

// Owner is the ratepayer a bill is addressed to, keyed by national IC for
// kiosk lookups.
type Owner struct {
	ID   snowflake.ID `gorm:"primaryKey" json:"id"`
	IC   string       `gorm:"type:varchar(20);uniqueIndex;not null" json:"ic"`
	Name string       `gorm:"not null" json:"name"`
}

// TableName sets the database table name.
func (Owner) TableName() string { return "tax_owners" }

// Bill is one assessment tax bill. Payment records the amount, reference and
// date; bills are settled whole, never partially.
type Bill struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	BillNo     string       `gorm:"type:varchar(30);uniqueIndex;not null" json:"bill_no"`
	OwnerID    snowflake.ID `gorm:"index;not null" json:"owner_id"`
	PropertyID int64        `gorm:"not null" json:"property_id"`
	Year       int          `gorm:"not null" json:"year"`
	Amount     float64      `gorm:"not null" json:"amount"`
	PaidAmount *float64     `json:"paid_amount"`
	PaymentRef *string      `gorm:"type:varchar(50)" json:"payment_ref"`
	PaidDate   *time.Time   `json:"paid_date"`
	Status     Status       `gorm:"type:varchar(10);not null;default:'unpaid'" json:"status"`
}

// TableName sets the database table name.
func (Bill) TableName() string { return "tax_bills" }
