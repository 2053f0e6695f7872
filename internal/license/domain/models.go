package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusUnpaid  Status = "unpaid"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// License is a council-issued trade license. Paying activates it for a fixed
// 365-day window; expiry is detected lazily on the next read.
type License struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	LicenseNum  string       `gorm:"type:varchar(30);uniqueIndex;not null" json:"license_num"`
	LicenseType string       `gorm:"type:varchar(50);not null" json:"license_type"`
	OwnerID     int64        `gorm:"not null" json:"owner_id"`
	Year        int          `gorm:"not null" json:"year"`
	Amount      float64      `gorm:"not null" json:"amount"`
	Status      Status       `gorm:"type:varchar(10);not null;default:'unpaid'" json:"status"`
	StartDate   *time.Time   `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time   `gorm:"type:date" json:"end_date"`
}

// TableName sets the database table name.
func (License) TableName() string { return "licenses" }

// ValidityDays is how long a paid license stays active.
const ValidityDays = 365

// ParseNumber derives the license category and year from the license number.
// The council encodes the category as a three-letter code anywhere in the
// number and the four-digit year at positions 7 to 10.
func ParseNumber(licenseNum string) (licenseType string, year int, ok bool) {
	switch {
	case strings.Contains(licenseNum, "BIZ"):
		licenseType = "Business License"
	case strings.Contains(licenseNum, "HBR"):
		licenseType = "Entertainment / Buskers License"
	case strings.Contains(licenseNum, "IKL"):
		licenseType = "Advertisement License"
	case strings.Contains(licenseNum, "KOM"):
		licenseType = "Composite License"
	default:
		licenseType = "Unknown"
	}

	if len(licenseNum) < 11 {
		return licenseType, 0, false
	}
	year, err := strconv.Atoi(licenseNum[7:11])
	if err != nil {
		return licenseType, 0, false
	}
	return licenseType, year, true
}

// Expired reports whether an activated license has run out at the given day.
func (l License) Expired(now time.Time) bool {
	return l.EndDate != nil && now.After(*l.EndDate)
}
