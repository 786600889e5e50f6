package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Category    string
	Sizes       []string
	Colors      []string
	InStock     bool
	Featured    bool
}

// AlreadySeededMessage is returned when the catalog is non-empty and the
// seed is skipped.
const AlreadySeededMessage = "Products already seeded"

// Apply bulk-loads the sample catalog. It only inserts when the catalog is
// currently empty, so repeated calls are no-ops; the returned message says
// which case applied.
func Apply(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return "", fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return AlreadySeededMessage, nil
	}

	for _, p := range catalog {
		if err := insertProduct(ctx, pool, p); err != nil {
			return "", fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}

	return fmt.Sprintf("Seeded %d savage products across all categories", len(catalog)), nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price, image_url, category, sizes, colors, in_stock, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := pool.Exec(ctx, q,
		p.Name, p.Description, p.Price, p.ImageURL, p.Category,
		p.Sizes, p.Colors, p.InStock, p.Featured,
	)
	return err
}

var catalog = []productSeed{
	// Hoodies
	{
		Name:        "Death Metal Hoodie",
		Description: "Embrace the darkness with this premium black hoodie featuring gothic metal aesthetics. Perfect for the savage soul.",
		Price:       2999,
		ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500&h=500&fit=crop",
		Category:    "Hoodies",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Black", "Dark Red"},
		InStock:     true,
		Featured:    true,
	},
	{
		Name:        "Savage Oversized Hoodie",
		Description: "Ultra-dark oversized hoodie with blood-red accents. For those who live in the shadows and embrace their savage nature.",
		Price:       3499,
		ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=500&fit=crop",
		Category:    "Hoodies",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Black", "Charcoal", "Dark Red"},
		InStock:     true,
		Featured:    true,
	},
	{
		Name:        "Gothic Rebellion Hoodie",
		Description: "Born from rebellion, this gothic-inspired hoodie features intricate dark designs. Made for the metal warriors.",
		Price:       3799,
		ImageURL:    "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=500&h=500&fit=crop",
		Category:    "Hoodies",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Black", "Dark Navy"},
		InStock:     true,
	},
	{
		Name:        "Blood Moon Premium Hoodie",
		Description: "Luxurious blood-red hoodie with premium fleece lining. The ultimate statement piece for the savage culture elite.",
		Price:       4999,
		ImageURL:    "https://images.unsplash.com/photo-1620799139834-6b8f844fbe61?w=500&h=500&fit=crop",
		Category:    "Hoodies",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Blood Red", "Burgundy"},
		InStock:     true,
		Featured:    true,
	},

	// T-shirts
	{
		Name:        "Savage Culture Metal Tee",
		Description: "Express your dark side with this premium metal-inspired t-shirt. Soft cotton with bold gothic graphics.",
		Price:       1999,
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=500&fit=crop",
		Category:    "T-Shirts",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Black", "Dark Red", "Charcoal"},
		InStock:     true,
		Featured:    true,
	},
	{
		Name:        "Gothic Skull Tee",
		Description: "Unleash your inner darkness with this striking skull design. Premium quality cotton for ultimate comfort.",
		Price:       2299,
		ImageURL:    "https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=500&h=500&fit=crop",
		Category:    "T-Shirts",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Black", "Dark Gray"},
		InStock:     true,
	},
	{
		Name:        "Crimson Rebellion Tee",
		Description: "Bold crimson graphics on premium black cotton. Perfect for those who dare to be different.",
		Price:       2499,
		ImageURL:    "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=500&h=500&fit=crop",
		Category:    "T-Shirts",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Black", "Crimson"},
		InStock:     true,
		Featured:    true,
	},

	// Pants
	{
		Name:        "Dark Warrior Cargo Pants",
		Description: "Military-inspired cargo pants with gothic details. Built for the modern savage warrior.",
		Price:       4299,
		ImageURL:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=500&fit=crop",
		Category:    "Pants",
		Sizes:       []string{"28", "30", "32", "34", "36", "38"},
		Colors:      []string{"Black", "Dark Gray", "Charcoal"},
		InStock:     true,
		Featured:    true,
	},
	{
		Name:        "Gothic Skinny Jeans",
		Description: "Sleek black skinny jeans with subtle gothic accents. Perfect for completing your dark aesthetic.",
		Price:       3799,
		ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=500&fit=crop",
		Category:    "Pants",
		Sizes:       []string{"28", "30", "32", "34", "36"},
		Colors:      []string{"Black", "Dark Wash"},
		InStock:     true,
	},
	{
		Name:        "Savage Tactical Pants",
		Description: "Heavy-duty tactical pants with multiple pockets and reinforced knees. Built for the savage lifestyle.",
		Price:       4799,
		ImageURL:    "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=500&h=500&fit=crop",
		Category:    "Pants",
		Sizes:       []string{"30", "32", "34", "36", "38"},
		Colors:      []string{"Black", "Dark Olive"},
		InStock:     true,
		Featured:    true,
	},
}
