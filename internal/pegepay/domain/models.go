package domain

import "github.com/bwmarrin/snowflake"

// OrderStatus values mirror what the gateway reports. Locally an order stays
// unprocessed until a status poll sees it paid.
const (
	OrderStatusUnprocessed = "unprocessed"
	OrderStatusSuccessful  = "successful"
)

// Token is the shared gateway access token. A single row is kept and
// refreshed in place; expiry is the gateway's epoch-milliseconds timestamp.
type Token struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	AccessToken    string `gorm:"not null" json:"access_token"`
	TokenExpiredAt int64  `gorm:"not null;default:0" json:"token_expired_at"`
}

// TableName sets the database table name.
func (Token) TableName() string { return "pegepay_tokens" }

// Order is a QR payment order registered with the gateway. OrderNo is the
// gateway's key and carries the per-terminal sequence.
type Order struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	OrderNo     string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_no"`
	OrderAmount float64      `gorm:"not null" json:"order_amount"`
	OrderStatus string       `gorm:"type:varchar(50);not null" json:"order_status"`
	StoreID     string       `gorm:"type:varchar(100);not null" json:"store_id"`
	TerminalID  string       `gorm:"type:varchar(100);index;not null" json:"terminal_id"`
}

// TableName sets the database table name.
func (Order) TableName() string { return "pegepay_orders" }

// OrderNoLimit is the gateway's hard cap on order number length.
const OrderNoLimit = 15
