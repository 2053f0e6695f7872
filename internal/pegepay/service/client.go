package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/domain"
)

// Client is the raw HTTP binding to the gateway. It knows nothing about
// tokens or local order state; the service layers that on top.
type Client struct {
	http *http.Client
	cfg  config.PegepayConfig
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
		cfg:  cfg.Pegepay,
	}
}

type tokenResponse struct {
	AccessToken    string `json:"access_token"`
	TokenExpiredAt int64  `json:"token_expired_at"`
}

// orderPayload is what the gateway's order-create endpoint expects. Numeric
// values go over the wire as strings.
type orderPayload struct {
	OrderOutput      string `json:"order_output"`
	ImageFileFormat  string `json:"image_file_format"`
	OrderNo          string `json:"order_no"`
	OverrideExisting string `json:"override_existing_unprocessed_order_no"`
	OrderAmount      string `json:"order_amount"`
	QRValidity       string `json:"qr_validity"`
	StoreID          string `json:"store_id"`
	TerminalID       string `json:"terminal_id"`
	ShiftID          string `json:"shift_id"`
}

type orderResponse struct {
	Content struct {
		IframeURL string `json:"iframe_url"`
	} `json:"content"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Content struct {
		OrderNo     string  `json:"order_no"`
		OrderStatus string  `json:"order_status"`
		OrderAmount float64 `json:"order_amount"`
		StoreID     string  `json:"store_id"`
		TerminalID  string  `json:"terminal_id"`
		BankTrxNo   string  `json:"bank_trx_no"`
	} `json:"content"`
}

// RefreshToken trades the configured refresh token for a fresh access token.
func (c *Client) RefreshToken(ctx context.Context) (tokenResponse, error) {
	var out tokenResponse
	err := c.post(ctx, c.cfg.TokenURL, "", map[string]string{
		"refresh_token": c.cfg.RefreshToken,
	}, &out)
	if err != nil {
		return tokenResponse{}, err
	}
	if out.AccessToken == "" {
		return tokenResponse{}, fmt.Errorf("%w: no access token in response", domain.ErrGateway)
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, accessToken string, payload orderPayload) (orderResponse, error) {
	var out orderResponse
	if err := c.post(ctx, c.cfg.OrderURL, accessToken, payload, &out); err != nil {
		return orderResponse{}, err
	}
	if out.Content.IframeURL == "" {
		return orderResponse{}, fmt.Errorf("%w: no iframe url in response", domain.ErrGateway)
	}
	return out, nil
}

func (c *Client) OrderStatus(ctx context.Context, accessToken, orderNo string) (statusResponse, error) {
	var out statusResponse
	err := c.post(ctx, c.cfg.StatusURL, accessToken, map[string]string{
		"order_no": orderNo,
	}, &out)
	if err != nil {
		return statusResponse{}, err
	}
	if out.Status != "success" {
		return statusResponse{}, fmt.Errorf("%w: status %q", domain.ErrGateway, out.Status)
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, url, accessToken string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %s returned %d: %s", domain.ErrGateway, url, resp.StatusCode, detail)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrGateway, err)
	}
	return nil
}
