package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status of a compound (traffic summons). Values are upper case on the wire
// because the council's enforcement system exports them that way.
type Status string

const (
	StatusUnpaid Status = "UNPAID"
	StatusPaid   Status = "PAID"
)

// Compound is one summons issued against a plate. Payment flips Status; the
// row itself is immutable otherwise.
type Compound struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	CompoundNum string       `gorm:"type:varchar(30);uniqueIndex;not null" json:"compound_num"`
	Plate       string       `gorm:"type:varchar(50);index;not null" json:"plate"`
	IssuedDate  time.Time    `gorm:"type:date;not null" json:"issued_date"`
	IssuedTime  string       `gorm:"type:varchar(8);not null" json:"issued_time"`
	Offense     string       `gorm:"not null" json:"offense"`
	Amount      float64      `gorm:"not null" json:"amount"`
	Status      Status       `gorm:"type:varchar(10);not null;default:'UNPAID'" json:"status"`
}

// TableName sets the database table name.
func (Compound) TableName() string { return "compounds" }
