package order

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"savage-storefront/internal/domain"
	orderrepo "savage-storefront/internal/repository/order"
)

type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput is the checkout submission. There is no status field: every
// order starts as pending. TotalAmount is the client-computed total and is
// stored as submitted, without recomputation against the item snapshots.
type CreateInput struct {
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	Items           []domain.OrderItem     `json:"items"`
	TotalAmount     int64                  `json:"totalAmount"`
	PaymentMethod   string                 `json:"paymentMethod"`
	Notes           string                 `json:"notes,omitempty"`
}

// Create places a new order with a generated order number and status
// pending. No stock decrement, payment capture, or total validation
// happens here.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Order{
		OrderNumber:     newOrderNumber(time.Now()),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Items:           in.Items,
		TotalAmount:     in.TotalAmount,
		Status:          domain.StatusPending,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// ListByStatus filters on the closed status enumeration; unknown strings
// are rejected rather than silently matching nothing.
func (s *Service) ListByStatus(ctx context.Context, raw string) ([]domain.Order, error) {
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email required: %w", domain.ErrInvalidInput)
	}
	return s.repo.ListByEmail(ctx, email)
}

// UpdateStatus writes any of the defined statuses unconditionally. The
// transition order in domain.CanTransition is intentionally not enforced
// here; last write wins.
func (s *Service) UpdateStatus(ctx context.Context, id, raw string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("order id required: %w", domain.ErrInvalidInput)
	}
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func validateCreate(in CreateInput) error {
	if len(in.Items) == 0 {
		return fmt.Errorf("items required: %w", domain.ErrInvalidInput)
	}
	required := map[string]string{
		"customerName":  in.CustomerName,
		"customerEmail": in.CustomerEmail,
		"customerPhone": in.CustomerPhone,
		"street":        in.ShippingAddress.Street,
		"city":          in.ShippingAddress.City,
		"state":         in.ShippingAddress.State,
		"zipCode":       in.ShippingAddress.ZipCode,
		"country":       in.ShippingAddress.Country,
		"paymentMethod": in.PaymentMethod,
	}
	for _, field := range []string{
		"customerName", "customerEmail", "customerPhone",
		"street", "city", "state", "zipCode", "country", "paymentMethod",
	} {
		if strings.TrimSpace(required[field]) == "" {
			return fmt.Errorf("%s required: %w", field, domain.ErrInvalidInput)
		}
	}
	return nil
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newOrderNumber builds a human-readable order number from the creation
// timestamp and a short random suffix. Collisions are possible but
// negligible at interactive scale; the row id is the real identity.
func newOrderNumber(now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}
