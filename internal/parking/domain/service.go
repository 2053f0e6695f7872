package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type StartRequest struct {
	Plate    string
	Hours    float64
	Terminal string
}

type ExtendRequest struct {
	Plate      string
	ExtraHours float64
	Terminal   string
}

// Service is the sole authority for mutating session state. Start and Extend
// each commit the session write and the ledger append in one transaction.
type Service interface {
	// LookupActive returns the active paid session for the plate, or
	// ErrNoActiveSession. It is a pure read.
	LookupActive(ctx context.Context, plate string) (Session, error)
	// LatestSession returns the most recent paid session for the plate even
	// when it has expired. Receipts show the original window times.
	LatestSession(ctx context.Context, plate string) (Session, error)
	Start(ctx context.Context, req StartRequest) (Session, error)
	Extend(ctx context.Context, req ExtendRequest) (Session, error)
	List(ctx context.Context) ([]Session, error)
}

var (
	ErrInvalidPlate    = errors.New("invalid_plate")
	ErrInvalidHours    = errors.New("invalid_hours")
	ErrNoActiveSession = errors.New("no_active_session")
)

// AlreadyActiveError rejects a start while a paid session is still running.
// Until lets the caller display the existing expiry and offer an extension.
type AlreadyActiveError struct {
	Until time.Time
}

func (e *AlreadyActiveError) Error() string {
	return fmt.Sprintf("parking already active until %s", e.Until.Format(time.RFC3339))
}
