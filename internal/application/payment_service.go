package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/y-smart/service-tripplan/internal/domain"
	"github.com/y-smart/service-tripplan/internal/domain/payment"
	"github.com/y-smart/service-tripplan/internal/metrics"
	"go.uber.org/zap"
)

// PayRequest selects a stored itinerary and a payment method.
type PayRequest struct {
	SearchID string         `json:"search_id" binding:"required"`
	RouteID  string         `json:"route_id" binding:"required"`
	Method   payment.Method `json:"method" binding:"required"`
}

// QuoteDTO is the integrated fare display for one itinerary.
type QuoteDTO struct {
	SearchID  string            `json:"search_id"`
	RouteID   string            `json:"route_id"`
	Breakdown payment.Breakdown `json:"breakdown"`
}

// PaymentService composes fare breakdowns and simulates payment processing.
// Payments always succeed after a fixed delay; no money moves.
type PaymentService struct {
	store     SearchStore
	delay     time.Duration
	collector *metrics.Collector
	logger    *zap.Logger
}

// NewPaymentService creates a PaymentService with the given simulated
// processing delay.
func NewPaymentService(store SearchStore, delay time.Duration, collector *metrics.Collector, logger *zap.Logger) *PaymentService {
	return &PaymentService{store: store, delay: delay, collector: collector, logger: logger}
}

// Methods lists the selectable payment methods.
func (s *PaymentService) Methods() []payment.MethodInfo {
	return payment.AvailableMethods()
}

// Quote composes the fare breakdown for a stored itinerary.
func (s *PaymentService) Quote(searchID, routeID string) (*QuoteDTO, error) {
	r, ok := s.store.FindRoute(searchID, routeID)
	if !ok {
		return nil, domain.NewNotFoundError("route not found")
	}
	return &QuoteDTO{
		SearchID:  searchID,
		RouteID:   routeID,
		Breakdown: payment.BreakdownFor(r),
	}, nil
}

// Pay simulates processing a payment for a stored itinerary.
func (s *PaymentService) Pay(ctx context.Context, req PayRequest) (*payment.Receipt, error) {
	if !req.Method.IsValid() {
		return nil, domain.NewValidationError("unknown payment method: " + string(req.Method))
	}

	r, ok := s.store.FindRoute(req.SearchID, req.RouteID)
	if !ok {
		return nil, domain.NewNotFoundError("route not found")
	}
	breakdown := payment.BreakdownFor(r)

	receipt := &payment.Receipt{
		ID:          uuid.New(),
		Method:      req.Method,
		AmountKRW:   breakdown.TotalKRW,
		Status:      payment.StatusPending,
		RequestedAt: time.Now().UTC(),
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
	}

	now := time.Now().UTC()
	receipt.Status = payment.StatusSucceeded
	receipt.CompletedAt = &now

	s.collector.PaymentsSimulated.Inc()
	s.logger.Info("payment simulated",
		zap.String("receipt_id", receipt.ID.String()),
		zap.String("method", string(receipt.Method)),
		zap.Int("amount", receipt.AmountKRW),
	)
	return receipt, nil
}
