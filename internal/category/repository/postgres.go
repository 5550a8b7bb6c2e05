package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	query := `SELECT id, name, parent_id FROM categories ORDER BY id`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *PGRepository) CountDirectAttributes(ctx context.Context) (map[int64]int, error) {
	query := `
        SELECT category_id, COUNT(*) AS count
        FROM attribute_categories
        GROUP BY category_id`
	return r.countBy(ctx, query, "count attributes per category")
}

func (r *PGRepository) CountProducts(ctx context.Context) (map[int64]int, error) {
	query := `
        SELECT category_id, COUNT(*) AS count
        FROM products
        GROUP BY category_id`
	return r.countBy(ctx, query, "count products per category")
}

func (r *PGRepository) countBy(ctx context.Context, query, what string) (map[int64]int, error) {
	var rows []model.CategoryCount
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
