package domain

import "time"

// PaymentStatus marks whether a session row has been paid for. The original
// kiosk flow only ever persists paid rows, but the column is kept so that a
// future reserve-then-pay flow can reuse the table.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// Session is one purchased parking window for a plate. Rows are never
// deleted; expiry is implicit (TimeOut passes) and detected lazily on the
// next lookup.
type Session struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Plate         string        `gorm:"type:varchar(50);index;not null" json:"plate"`
	Terminal      string        `gorm:"type:varchar(50);not null" json:"terminal"`
	TimeUsed      float64       `gorm:"not null" json:"time_used"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(10);not null;default:'unpaid'" json:"payment_status"`
	TimeIn        time.Time     `gorm:"not null" json:"time_in"`
	TimeOut       time.Time     `gorm:"not null;index" json:"time_out"`
	Amount        float64       `gorm:"not null" json:"amount"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "parking_sessions" }

// IsActive reports whether the session covers the given instant. Expiry is
// never stored; it is always derived from TimeOut.
func IsActive(s Session, now time.Time) bool {
	return s.PaymentStatus == PaymentStatusPaid && now.Before(s.TimeOut)
}

// Duration converts purchased hours into a wall-clock duration.
func Duration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
