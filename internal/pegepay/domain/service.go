package domain

import (
	"context"
	"errors"
)

type CreateOrderRequest struct {
	OrderAmount float64 `json:"order_amount"`
	QRValidity  int     `json:"qr_validity"`
	StoreID     string  `json:"store_id"`
	TerminalID  string  `json:"terminal_id"`
	ShiftID     string  `json:"shift_id"`
}

type CreateOrderResponse struct {
	IframeURL string `json:"iframe_url"`
	OrderNo   string `json:"order_no"`
}

type StatusRequest struct {
	OrderNo string `json:"order_no"`
}

// StatusResponse reports the gateway's view of an order. BankTrxNo is only
// present once the payment went through.
type StatusResponse struct {
	OrderNo     string `json:"order_no"`
	OrderStatus string `json:"order_status"`
	BankTrxNo   string `json:"bank_trx_no,omitempty"`
	Message     string `json:"message,omitempty"`
}

type Service interface {
	// CreateOrder registers a QR order with the gateway and returns the
	// iframe URL the kiosk embeds. An unprocessed order for the terminal is
	// reused instead of burning a new number.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error)
	// CheckStatus polls the gateway. Only a successful payment is persisted;
	// any other status is reported without touching the local row.
	CheckStatus(ctx context.Context, orderNo string) (StatusResponse, error)
	ListOrders(ctx context.Context) ([]Order, error)
}

var (
	// ErrGateway wraps any failure talking to the gateway. Callers map it to
	// 502; it never implies anything about local state.
	ErrGateway = errors.New("pegepay_gateway")
	ErrInvalid = errors.New("invalid_pegepay_request")
)
