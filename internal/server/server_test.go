package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	compounddomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
	licensedomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/observability"
	parkingdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
	pegepaydomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/pdf"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/render"
	taxdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/domain"
	txdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

type fakeParkingService struct {
	lookupActive  func(ctx context.Context, plate string) (parkingdomain.Session, error)
	latestSession func(ctx context.Context, plate string) (parkingdomain.Session, error)
	start         func(ctx context.Context, req parkingdomain.StartRequest) (parkingdomain.Session, error)
	extend        func(ctx context.Context, req parkingdomain.ExtendRequest) (parkingdomain.Session, error)
	list          func(ctx context.Context) ([]parkingdomain.Session, error)
}

func (f *fakeParkingService) LookupActive(ctx context.Context, plate string) (parkingdomain.Session, error) {
	if f.lookupActive == nil {
		return parkingdomain.Session{}, parkingdomain.ErrNoActiveSession
	}
	return f.lookupActive(ctx, plate)
}

func (f *fakeParkingService) LatestSession(ctx context.Context, plate string) (parkingdomain.Session, error) {
	if f.latestSession == nil {
		return parkingdomain.Session{}, parkingdomain.ErrNoActiveSession
	}
	return f.latestSession(ctx, plate)
}

func (f *fakeParkingService) Start(ctx context.Context, req parkingdomain.StartRequest) (parkingdomain.Session, error) {
	if f.start == nil {
		return parkingdomain.Session{}, errors.New("not stubbed")
	}
	return f.start(ctx, req)
}

func (f *fakeParkingService) Extend(ctx context.Context, req parkingdomain.ExtendRequest) (parkingdomain.Session, error) {
	if f.extend == nil {
		return parkingdomain.Session{}, errors.New("not stubbed")
	}
	return f.extend(ctx, req)
}

func (f *fakeParkingService) List(ctx context.Context) ([]parkingdomain.Session, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list(ctx)
}

type fakeTransactionService struct {
	findByTicket func(ctx context.Context, ticketID string) (txdomain.Entry, error)
	latest       func(ctx context.Context) (txdomain.Entry, error)
}

func (f *fakeTransactionService) FindByTicket(ctx context.Context, ticketID string) (txdomain.Entry, error) {
	if f.findByTicket == nil {
		return txdomain.Entry{}, txdomain.ErrNotFound
	}
	return f.findByTicket(ctx, ticketID)
}

func (f *fakeTransactionService) FindLatestByPlate(ctx context.Context, plate string) (txdomain.Entry, error) {
	return txdomain.Entry{}, txdomain.ErrNotFound
}

func (f *fakeTransactionService) Latest(ctx context.Context) (txdomain.Entry, error) {
	if f.latest == nil {
		return txdomain.Entry{}, txdomain.ErrNotFound
	}
	return f.latest(ctx)
}

func (f *fakeTransactionService) List(ctx context.Context) ([]txdomain.Entry, error) {
	return nil, nil
}

type fakeCompoundService struct {
	create   func(ctx context.Context, req compounddomain.CreateRequest) (compounddomain.Compound, error)
	pay      func(ctx context.Context, compoundNum string) (compounddomain.Compound, error)
	getByNum func(ctx context.Context, compoundNum string) (compounddomain.Compound, error)
}

func (f *fakeCompoundService) Create(ctx context.Context, req compounddomain.CreateRequest) (compounddomain.Compound, error) {
	if f.create == nil {
		return compounddomain.Compound{}, errors.New("not stubbed")
	}
	return f.create(ctx, req)
}

func (f *fakeCompoundService) Pay(ctx context.Context, compoundNum string) (compounddomain.Compound, error) {
	if f.pay == nil {
		return compounddomain.Compound{}, compounddomain.ErrNotFound
	}
	return f.pay(ctx, compoundNum)
}

func (f *fakeCompoundService) GetByNum(ctx context.Context, compoundNum string) (compounddomain.Compound, error) {
	if f.getByNum == nil {
		return compounddomain.Compound{}, compounddomain.ErrNotFound
	}
	return f.getByNum(ctx, compoundNum)
}

func (f *fakeCompoundService) Latest(ctx context.Context) (compounddomain.Compound, error) {
	return compounddomain.Compound{}, compounddomain.ErrNotFound
}

func (f *fakeCompoundService) List(ctx context.Context) ([]compounddomain.Compound, error) {
	return nil, nil
}

type fakeLicenseService struct {
	pay func(ctx context.Context, licenseNum string) (licensedomain.License, error)
	get func(ctx context.Context, licenseNum string) (licensedomain.License, error)
}

func (f *fakeLicenseService) Create(ctx context.Context, req licensedomain.CreateRequest) (licensedomain.License, error) {
	return licensedomain.License{}, errors.New("not stubbed")
}

func (f *fakeLicenseService) Pay(ctx context.Context, licenseNum string) (licensedomain.License, error) {
	if f.pay == nil {
		return licensedomain.License{}, licensedomain.ErrNotFound
	}
	return f.pay(ctx, licenseNum)
}

func (f *fakeLicenseService) Get(ctx context.Context, licenseNum string) (licensedomain.License, error) {
	if f.get == nil {
		return licensedomain.License{}, licensedomain.ErrNotFound
	}
	return f.get(ctx, licenseNum)
}

func (f *fakeLicenseService) List(ctx context.Context) ([]licensedomain.License, error) {
	return nil, nil
}

type fakeTaxService struct {
	payBatch func(ctx context.Context, req taxdomain.PayBatchRequest) ([]taxdomain.Bill, error)
}

func (f *fakeTaxService) CreateOwner(ctx context.Context, req taxdomain.CreateOwnerRequest) (taxdomain.Owner, error) {
	return taxdomain.Owner{}, errors.New("not stubbed")
}

func (f *fakeTaxService) CreateBill(ctx context.Context, req taxdomain.CreateBillRequest) (taxdomain.Bill, error) {
	return taxdomain.Bill{}, errors.New("not stubbed")
}

func (f *fakeTaxService) GetByBillNo(ctx context.Context, billNo string) (taxdomain.Bill, error) {
	return taxdomain.Bill{}, taxdomain.ErrBillNotFound
}

func (f *fakeTaxService) ListByOwnerIC(ctx context.Context, ic string) ([]taxdomain.Bill, error) {
	return nil, nil
}

func (f *fakeTaxService) List(ctx context.Context) ([]taxdomain.Bill, error) {
	return nil, nil
}

func (f *fakeTaxService) PayBatch(ctx context.Context, req taxdomain.PayBatchRequest) ([]taxdomain.Bill, error) {
	if f.payBatch == nil {
		return nil, taxdomain.ErrBillNotFound
	}
	return f.payBatch(ctx, req)
}

type fakePegepayService struct {
	createOrder func(ctx context.Context, req pegepaydomain.CreateOrderRequest) (pegepaydomain.CreateOrderResponse, error)
	checkStatus func(ctx context.Context, orderNo string) (pegepaydomain.StatusResponse, error)
}

func (f *fakePegepayService) CreateOrder(ctx context.Context, req pegepaydomain.CreateOrderRequest) (pegepaydomain.CreateOrderResponse, error) {
	if f.createOrder == nil {
		return pegepaydomain.CreateOrderResponse{}, errors.New("not stubbed")
	}
	return f.createOrder(ctx, req)
}

func (f *fakePegepayService) CheckStatus(ctx context.Context, orderNo string) (pegepaydomain.StatusResponse, error) {
	if f.checkStatus == nil {
		return pegepaydomain.StatusResponse{}, errors.New("not stubbed")
	}
	return f.checkStatus(ctx, orderNo)
}

func (f *fakePegepayService) ListOrders(ctx context.Context) ([]pegepaydomain.Order, error) {
	return nil, nil
}

type stubUploader struct {
	url string
	err error
}

func (u stubUploader) Upload(_ context.Context, _ string, _ []byte, _ string) (string, error) {
	return u.url, u.err
}

type testDeps struct {
	parking  *fakeParkingService
	tx       *fakeTransactionService
	compound *fakeCompoundService
	license  *fakeLicenseService
	tax      *fakeTaxService
	pegepay  *fakePegepayService
	uploader stubUploader
}

func newTestServer(t *testing.T, deps testDeps) *Server {
	t.Helper()

	if deps.parking == nil {
		deps.parking = &fakeParkingService{}
	}
	if deps.tx == nil {
		deps.tx = &fakeTransactionService{}
	}
	if deps.compound == nil {
		deps.compound = &fakeCompoundService{}
	}
	if deps.license == nil {
		deps.license = &fakeLicenseService{}
	}
	if deps.tax == nil {
		deps.tax = &fakeTaxService{}
	}
	if deps.pegepay == nil {
		deps.pegepay = &fakePegepayService{}
	}

	cfg := config.Config{BaseURL: "http://kiosk.test", HTTPAddr: ":0"}
	receipts := receipt.New(receipt.Params{
		Cfg:      cfg,
		Renderer: render.NewRenderer(),
		PDF:      pdf.NewGenerator(),
		Uploader: deps.uploader,
	})

	engine := NewEngine(observability.Config{LogLevel: "info"}, zap.NewNop(), nil)
	return NewServer(ServerParams{
		Gin:         engine,
		Cfg:         cfg,
		Log:         zap.NewNop(),
		ParkingSvc:  deps.parking,
		TxSvc:       deps.tx,
		CompoundSvc: deps.compound,
		LicenseSvc:  deps.license,
		TaxSvc:      deps.tax,
		PegepaySvc:  deps.pegepay,
		Receipts:    receipts,
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorPayload {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testDeps{})

	w := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckParking_Active(t *testing.T) {
	timeOut := time.Now().Add(2 * time.Hour)
	s := newTestServer(t, testDeps{
		parking: &fakeParkingService{
			lookupActive: func(_ context.Context, plate string) (parkingdomain.Session, error) {
				assert.Equal(t, "WXY1234", plate)
				return parkingdomain.Session{
					Plate:         "WXY1234",
					PaymentStatus: parkingdomain.PaymentStatusPaid,
					TimeOut:       timeOut,
				}, nil
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/parking/check", gin.H{"plate": "WXY1234"})

	require.Equal(t, http.StatusOK, w.Code)
	var session parkingdomain.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "WXY1234", session.Plate)
}

func TestCheckParking_NoActiveSessionIs404(t *testing.T) {
	s := newTestServer(t, testDeps{})

	w := doJSON(t, s, http.MethodGet, "/parking/check/WXY1234", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeError(t, w).Type)
}

func TestPayParking_Success(t *testing.T) {
	s := newTestServer(t, testDeps{
		parking: &fakeParkingService{
			start: func(_ context.Context, req parkingdomain.StartRequest) (parkingdomain.Session, error) {
				assert.Equal(t, "WXY1234", req.Plate)
				assert.Equal(t, 2.0, req.Hours)
				assert.Equal(t, "KN08", req.Terminal)
				return parkingdomain.Session{Plate: req.Plate, TimeUsed: req.Hours, Amount: 1.3}, nil
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/parking/pay", gin.H{
		"plate":     "WXY1234",
		"time_used": 2.0,
		"terminal":  "KN08",
	})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestPayParking_AlreadyActiveCarriesUntil(t *testing.T) {
	until := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	s := newTestServer(t, testDeps{
		parking: &fakeParkingService{
			start: func(_ context.Context, _ parkingdomain.StartRequest) (parkingdomain.Session, error) {
				return parkingdomain.Session{}, &parkingdomain.AlreadyActiveError{Until: until}
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/parking/pay", gin.H{"plate": "WXY1234", "time_used": 1.0})

	require.Equal(t, http.StatusConflict, w.Code)
	payload := decodeError(t, w)
	assert.Equal(t, "already_active", payload.Type)
	require.NotNil(t, payload.Until)
	assert.True(t, payload.Until.Equal(until))
}

func TestPayParking_InvalidHoursIs400(t *testing.T) {
	s := newTestServer(t, testDeps{
		parking: &fakeParkingService{
			start: func(_ context.Context, _ parkingdomain.StartRequest) (parkingdomain.Session, error) {
				return parkingdomain.Session{}, parkingdomain.ErrInvalidHours
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/parking/pay", gin.H{"plate": "WXY1234", "time_used": -1.0})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeError(t, w).Type)
}

func TestPayParking_MalformedBodyIs400(t *testing.T) {
	s := newTestServer(t, testDeps{})

	req := httptest.NewRequest(http.MethodPost, "/parking/pay", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtendParking_NoActiveSessionIs409(t *testing.T) {
	s := newTestServer(t, testDeps{
		parking: &fakeParkingService{
			extend: func(_ context.Context, req parkingdomain.ExtendRequest) (parkingdomain.Session, error) {
				assert.Equal(t, "WXY1234", req.Plate)
				assert.Equal(t, "KN09", req.Terminal)
				return parkingdomain.Session{}, parkingdomain.ErrNoActiveSession
			},
		},
	})

	w := doJSON(t, s, http.MethodPut, "/parking/WXY1234/KN09/extend", gin.H{"hours": 1.0})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", decodeError(t, w).Type)
}

func TestGetTransaction_NotFound(t *testing.T) {
	s := newTestServer(t, testDeps{})

	w := doJSON(t, s, http.MethodGet, "/transactions/P-9999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeError(t, w).Type)
}

func TestParkingReceiptView(t *testing.T) {
	entry := txdomain.Entry{TicketID: "P-0001", Plate: "WXY1234", Hours: 2, Amount: 1.3, Type: txdomain.TypeNew}
	s := newTestServer(t, testDeps{
		tx: &fakeTransactionService{
			findByTicket: func(_ context.Context, ticketID string) (txdomain.Entry, error) {
				assert.Equal(t, "P-0001", ticketID)
				return entry, nil
			},
		},
	})

	w := doJSON(t, s, http.MethodGet, "/transactions/receipt/view/P-0001", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "P-0001")
	assert.Contains(t, body, "WXY1234")
	// No session on record, so the window times degrade to N/A.
	assert.Contains(t, body, "N/A")
}

func TestParkingReceiptPDF(t *testing.T) {
	s := newTestServer(t, testDeps{
		tx: &fakeTransactionService{
			findByTicket: func(_ context.Context, _ string) (txdomain.Entry, error) {
				return txdomain.Entry{TicketID: "P-0001", Plate: "WXY1234", Amount: 1.3}, nil
			},
		},
	})

	w := doJSON(t, s, http.MethodGet, "/transactions/receipt/pdf/P-0001", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestParkingReceiptQR(t *testing.T) {
	s := newTestServer(t, testDeps{
		tx: &fakeTransactionService{
			findByTicket: func(_ context.Context, _ string) (txdomain.Entry, error) {
				return txdomain.Entry{TicketID: "P-0001"}, nil
			},
		},
	})

	w := doJSON(t, s, http.MethodGet, "/transactions/receipt/qr/P-0001", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.NotZero(t, img.Bounds().Dx())
}

func TestPayCompound_UploadFailureDoesNotFailPayment(t *testing.T) {
	s := newTestServer(t, testDeps{
		compound: &fakeCompoundService{
			pay: func(_ context.Context, compoundNum string) (compounddomain.Compound, error) {
				return compounddomain.Compound{
					CompoundNum: compoundNum,
					Plate:       "WXY1234",
					IssuedDate:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
					Status:      compounddomain.StatusPaid,
				}, nil
			},
		},
		uploader: stubUploader{err: errors.New("storage offline")},
	})

	w := doJSON(t, s, http.MethodPost, "/compound/pay/KMC-001", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp payCompoundResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, compounddomain.StatusPaid, resp.Compound.Status)
	assert.Empty(t, resp.ReceiptURL)
	assert.Contains(t, resp.ReceiptUpload, "storage offline")
}

func TestPayCompound_UploadSuccessReturnsURL(t *testing.T) {
	s := newTestServer(t, testDeps{
		compound: &fakeCompoundService{
			pay: func(_ context.Context, compoundNum string) (compounddomain.Compound, error) {
				return compounddomain.Compound{
					CompoundNum: compoundNum,
					IssuedDate:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
					Status:      compounddomain.StatusPaid,
				}, nil
			},
		},
		uploader: stubUploader{url: "https://blob.test/receipts/compound_KMC-001.pdf?sig=abc"},
	})

	w := doJSON(t, s, http.MethodPost, "/compound/pay/KMC-001", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp payCompoundResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.ReceiptURL, "compound_KMC-001.pdf")
	assert.Empty(t, resp.ReceiptUpload)
}

func TestPayCompound_AlreadyPaidIs409(t *testing.T) {
	s := newTestServer(t, testDeps{
		compound: &fakeCompoundService{
			pay: func(_ context.Context, _ string) (compounddomain.Compound, error) {
				return compounddomain.Compound{}, compounddomain.ErrAlreadyPaid
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/compound/pay/KMC-001", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", decodeError(t, w).Type)
}

func TestPayLicense_AlreadyActiveIs409(t *testing.T) {
	s := newTestServer(t, testDeps{
		license: &fakeLicenseService{
			pay: func(_ context.Context, _ string) (licensedomain.License, error) {
				return licensedomain.License{}, licensedomain.ErrAlreadyActive
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/license/pay/0000123BIZ2025001", nil)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestTaxPayBatch_UnknownBillIs404(t *testing.T) {
	s := newTestServer(t, testDeps{
		tax: &fakeTaxService{
			payBatch: func(_ context.Context, req taxdomain.PayBatchRequest) ([]taxdomain.Bill, error) {
				require.Len(t, req.Payments, 1)
				return nil, taxdomain.ErrBillNotFound
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/tax/pay", taxdomain.PayBatchRequest{
		Payments: []taxdomain.Payment{{BillNo: "CT-404", PaidAmount: 120, PaymentRef: "REF1"}},
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeError(t, w).Type)
}

func TestPegepayCreateOrder_GatewayDownIs502(t *testing.T) {
	s := newTestServer(t, testDeps{
		pegepay: &fakePegepayService{
			createOrder: func(_ context.Context, _ pegepaydomain.CreateOrderRequest) (pegepaydomain.CreateOrderResponse, error) {
				return pegepaydomain.CreateOrderResponse{}, pegepaydomain.ErrGateway
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/pegepay/create-order", pegepaydomain.CreateOrderRequest{
		OrderAmount: 1.3,
		TerminalID:  "KN08",
	})

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "gateway_error", decodeError(t, w).Type)
}

func TestPegepayCheckStatus(t *testing.T) {
	s := newTestServer(t, testDeps{
		pegepay: &fakePegepayService{
			checkStatus: func(_ context.Context, orderNo string) (pegepaydomain.StatusResponse, error) {
				assert.Equal(t, "TXN-KN08-000001", orderNo)
				return pegepaydomain.StatusResponse{
					OrderNo:     orderNo,
					OrderStatus: "successful",
					BankTrxNo:   "BK123",
				}, nil
			},
		},
	})

	w := doJSON(t, s, http.MethodPost, "/pegepay/check-status", gin.H{"order_no": "TXN-KN08-000001"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp pegepaydomain.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "successful", resp.OrderStatus)
}

func TestPegepayIframeWrapper(t *testing.T) {
	s := newTestServer(t, testDeps{})

	w := doJSON(t, s, http.MethodGet, "/pegepay/iframe-wrapper?iframe_url=https%3A%2F%2Fpegepay.test%2Fqr%2Fabc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `src="https://pegepay.test/qr/abc"`)
}

func TestPegepayIframeWrapper_MissingURLIs400(t *testing.T) {
	s := newTestServer(t, testDeps{})

	w := doJSON(t, s, http.MethodGet, "/pegepay/iframe-wrapper", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
