package catalog

import (
	"context"
	"fmt"
	"strings"

	"savage-storefront/internal/domain"
	productrepo "savage-storefront/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// SaveInput carries the admin product form. Sizes and colors arrive as the
// form's comma-separated values already split into lists; Price is minor
// currency units and deliberately unconstrained in sign and range.
type SaveInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in SaveInput) (*domain.Product, error) {
	p, err := productFromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id string, in SaveInput) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("product id required: %w", domain.ErrInvalidInput)
	}
	p, err := productFromInput(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("product id required: %w", domain.ErrInvalidInput)
	}
	return s.repo.Delete(ctx, id)
}

func productFromInput(in SaveInput) (domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Product{}, fmt.Errorf("name required: %w", domain.ErrInvalidInput)
	}
	return domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Sizes:       normalizeOptions(in.Sizes),
		Colors:      normalizeOptions(in.Colors),
		InStock:     in.InStock,
		Featured:    in.Featured,
	}, nil
}

// normalizeOptions trims entries and drops empties, matching how the admin
// form splits its comma-separated size and color fields.
func normalizeOptions(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
