package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"nike-dashboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// productColumns is shared by every read query so row scanning stays in one
// shape. All columns are text; COALESCE keeps NULLs out of the scan.
const productColumns = `
COALESCE(product_url, ''), COALESCE(image_url, ''), COALESCE(tagging, ''),
COALESCE(name, ''), COALESCE(description, ''), COALESCE(original_price, ''),
COALESCE(discount_price, ''), COALESCE(sizes_available, ''), COALESCE(vouchers, ''),
COALESCE(available_colors, ''), COALESCE(color_shown, ''), COALESCE(style_code, ''),
COALESCE(rating_score, ''), COALESCE(review_count, '')`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// ListAll selects every row and column of nike_products in insertion order.
func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM nike_products ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("catalog repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("catalog repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByStyleCode(ctx context.Context, styleCode string) (*domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM nike_products WHERE style_code = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, q, styleCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("catalog repo: get style_code=%s not found", styleCode)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("catalog repo: get style_code=%s error=%v", styleCode, err)
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or refreshes a row keyed on style_code. Only the importer
// and seed binaries call this; the web path never writes.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) error {
	const q = `
INSERT INTO nike_products (
    product_url, image_url, tagging, name, description, original_price,
    discount_price, sizes_available, vouchers, available_colors, color_shown,
    style_code, rating_score, review_count
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (style_code) DO UPDATE SET
    product_url = EXCLUDED.product_url,
    image_url = EXCLUDED.image_url,
    tagging = EXCLUDED.tagging,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    original_price = EXCLUDED.original_price,
    discount_price = EXCLUDED.discount_price,
    sizes_available = EXCLUDED.sizes_available,
    vouchers = EXCLUDED.vouchers,
    available_colors = EXCLUDED.available_colors,
    color_shown = EXCLUDED.color_shown,
    rating_score = EXCLUDED.rating_score,
    review_count = EXCLUDED.review_count
`
	_, err := r.pool.Exec(ctx, q,
		p.DetailURL,
		p.ImageURL,
		p.Tagging,
		p.Name,
		p.Description,
		p.OriginalPrice,
		p.DiscountPrice,
		p.Sizes,
		p.Vouchers,
		p.AvailableColors,
		p.ColorShown,
		p.StyleCode,
		p.RatingScore,
		p.ReviewCount,
	)
	if err != nil {
		r.logger.Printf("catalog repo: upsert style_code=%s error=%v", p.StyleCode, err)
		return err
	}
	r.logger.Printf("catalog repo: upserted style_code=%s", p.StyleCode)
	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.DetailURL,
		&p.ImageURL,
		&p.Tagging,
		&p.Name,
		&p.Description,
		&p.OriginalPrice,
		&p.DiscountPrice,
		&p.Sizes,
		&p.Vouchers,
		&p.AvailableColors,
		&p.ColorShown,
		&p.StyleCode,
		&p.RatingScore,
		&p.ReviewCount,
	)
	return p, err
}
