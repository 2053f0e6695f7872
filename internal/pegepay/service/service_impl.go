package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/clock"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/domain"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Client *Client
	Clock  clock.Clock
}

type service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	client *Client
	clock  clock.Clock

	// tokenMu keeps concurrent requests from racing a refresh and clobbering
	// each other's token row.
	tokenMu sync.Mutex
}

func New(p Params) domain.Service {
	return &service{
		db:     p.DB,
		log:    p.Log,
		genID:  p.GenID,
		repo:   p.Repo,
		client: p.Client,
		clock:  p.Clock,
	}
}

// token returns the cached gateway token, refreshing it through the gateway
// when the stored one has expired.
func (s *service) token(ctx context.Context) (string, error) {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()

	stored, err := s.repo.LatestToken(ctx, s.db)
	if err != nil {
		return "", err
	}

	nowMs := s.clock.Now().UnixMilli()
	if stored != nil && nowMs < stored.TokenExpiredAt {
		return stored.AccessToken, nil
	}

	refreshed, err := s.client.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	token := domain.Token{
		AccessToken:    refreshed.AccessToken,
		TokenExpiredAt: refreshed.TokenExpiredAt,
	}
	if stored != nil {
		token.ID = stored.ID
	}
	if err := s.repo.SaveToken(ctx, s.db, &token); err != nil {
		return "", err
	}

	s.log.Info("pegepay token refreshed", zap.Int64("expires_at_ms", token.TokenExpiredAt))
	return token.AccessToken, nil
}

func (s *service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error) {
	terminal := strings.TrimSpace(req.TerminalID)
	if terminal == "" {
		return domain.CreateOrderResponse{}, fmt.Errorf("%w: terminal_id is required", domain.ErrInvalid)
	}
	if req.OrderAmount <= 0 {
		return domain.CreateOrderResponse{}, fmt.Errorf("%w: order_amount must be positive", domain.ErrInvalid)
	}

	existing, err := s.repo.FindUnprocessedOrder(ctx, s.db, terminal)
	if err != nil {
		return domain.CreateOrderResponse{}, err
	}

	var orderNo string
	if existing != nil {
		orderNo = existing.OrderNo
	} else {
		orderNo, err = s.nextOrderNo(ctx, terminal)
		if err != nil {
			return domain.CreateOrderResponse{}, err
		}
	}

	accessToken, err := s.token(ctx)
	if err != nil {
		return domain.CreateOrderResponse{}, err
	}

	resp, err := s.client.CreateOrder(ctx, accessToken, orderPayload{
		OrderOutput:      "online",
		ImageFileFormat:  "png",
		OrderNo:          orderNo,
		OverrideExisting: "yes",
		OrderAmount:      strconv.FormatFloat(req.OrderAmount, 'f', 2, 64),
		QRValidity:       strconv.Itoa(req.QRValidity),
		StoreID:          req.StoreID,
		TerminalID:       terminal,
		ShiftID:          req.ShiftID,
	})
	if err != nil {
		return domain.CreateOrderResponse{}, err
	}

	if existing != nil {
		existing.OrderAmount = req.OrderAmount
		existing.OrderStatus = domain.OrderStatusUnprocessed
		existing.StoreID = req.StoreID
		err = s.repo.UpdateOrder(ctx, s.db, existing)
	} else {
		err = s.repo.InsertOrder(ctx, s.db, &domain.Order{
			ID:          s.genID.Generate(),
			OrderNo:     orderNo,
			OrderAmount: req.OrderAmount,
			OrderStatus: domain.OrderStatusUnprocessed,
			StoreID:     req.StoreID,
			TerminalID:  terminal,
		})
	}
	if err != nil {
		return domain.CreateOrderResponse{}, err
	}

	s.log.Info("pegepay order registered",
		zap.String("order_no", orderNo),
		zap.String("terminal_id", terminal),
		zap.Bool("reused", existing != nil),
	)
	return domain.CreateOrderResponse{
		IframeURL: resp.Content.IframeURL,
		OrderNo:   orderNo,
	}, nil
}

// nextOrderNo builds the next per-terminal order number, zero-padding the
// sequence so the whole number lands exactly on the gateway's 15-char cap.
func (s *service) nextOrderNo(ctx context.Context, terminal string) (string, error) {
	prefix := fmt.Sprintf("TXN-%s-", terminal)

	last, err := s.repo.FindLastOrder(ctx, s.db, terminal, prefix)
	if err != nil {
		return "", err
	}

	lastNumber := 0
	if last != nil {
		parts := strings.Split(last.OrderNo, "-")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			lastNumber = n
		}
	}

	width := domain.OrderNoLimit - len(prefix)
	if width < 1 {
		return "", fmt.Errorf("%w: terminal_id %q leaves no room for a sequence", domain.ErrInvalid, terminal)
	}
	orderNo := fmt.Sprintf("%s%0*d", prefix, width, lastNumber+1)
	if len(orderNo) > domain.OrderNoLimit {
		orderNo = orderNo[:domain.OrderNoLimit]
	}
	return orderNo, nil
}

func (s *service) CheckStatus(ctx context.Context, orderNo string) (domain.StatusResponse, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return domain.StatusResponse{}, fmt.Errorf("%w: order_no is required", domain.ErrInvalid)
	}

	accessToken, err := s.token(ctx)
	if err != nil {
		return domain.StatusResponse{}, err
	}

	resp, err := s.client.OrderStatus(ctx, accessToken, orderNo)
	if err != nil {
		return domain.StatusResponse{}, err
	}

	content := resp.Content
	if content.OrderStatus != domain.OrderStatusSuccessful {
		return domain.StatusResponse{
			OrderNo:     content.OrderNo,
			OrderStatus: content.OrderStatus,
			Message:     fmt.Sprintf("payment not successful yet (current status: %s)", content.OrderStatus),
		}, nil
	}

	err = s.repo.UpdateOrderByNo(ctx, s.db, orderNo, map[string]any{
		"order_status": content.OrderStatus,
		"order_amount": content.OrderAmount,
		"store_id":     content.StoreID,
		"terminal_id":  content.TerminalID,
	})
	if err != nil {
		return domain.StatusResponse{}, err
	}

	s.log.Info("pegepay order settled",
		zap.String("order_no", orderNo),
		zap.String("bank_trx_no", content.BankTrxNo),
	)
	return domain.StatusResponse{
		OrderNo:     content.OrderNo,
		OrderStatus: content.OrderStatus,
		BankTrxNo:   content.BankTrxNo,
	}, nil
}

func (s *service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, s.db)
}
