// Package seed loads a sample catalog into an empty or disposable database.
package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

func errorf(format string, args ...any) error {
	return fmt.Errorf("invalid dataset: "+format, args...)
}

type Seeder struct {
	DB     *sqlx.DB
	logger logger.ZapLogger
}

func NewSeeder(db *sqlx.DB, log logger.ZapLogger) *Seeder {
	return &Seeder{DB: db, logger: log}
}

// Seed replaces the whole catalog with ds inside one transaction.
func (s *Seeder) Seed(ctx context.Context, ds Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"attribute_values", "products", "attribute_categories", "attributes", "categories"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	categoryIDs := make(map[string]int64, len(ds.Categories))
	for _, c := range ds.Categories {
		var parentID *int64
		if c.Parent != "" {
			id := categoryIDs[c.Parent]
			parentID = &id
		}
		var id int64
		if err := tx.GetContext(ctx, &id, `INSERT INTO categories (name, parent_id) VALUES ($1, $2) RETURNING id`, c.Name, parentID); err != nil {
			return fmt.Errorf("insert category %q: %w", c.Name, err)
		}
		categoryIDs[c.Name] = id
	}
	s.logger.Info("categories created", zap.Int("count", len(categoryIDs)))

	attributeIDs := make(map[string]int64, len(ds.Attributes))
	for _, a := range ds.Attributes {
		var id int64
		if err := tx.GetContext(ctx, &id, `INSERT INTO attributes (name, type) VALUES ($1, $2) RETURNING id`, a.Name, a.Type); err != nil {
			return fmt.Errorf("insert attribute %q: %w", a.Name, err)
		}
		attributeIDs[a.Name] = id

		for _, c := range a.Categories {
			if _, err := tx.ExecContext(ctx, `INSERT INTO attribute_categories (attribute_id, category_id) VALUES ($1, $2)`, id, categoryIDs[c]); err != nil {
				return fmt.Errorf("link attribute %q to %q: %w", a.Name, c, err)
			}
		}
	}
	s.logger.Info("attributes created", zap.Int("count", len(attributeIDs)))

	for _, ps := range ds.Products {
		p := model.Product{Name: ps.Name, CategoryID: categoryIDs[ps.Category]}
		if ps.Description != "" {
			p.Description = &ps.Description
		}
		if err := tx.GetContext(ctx, &p.ID, `INSERT INTO products (name, description, category_id) VALUES ($1, $2, $3) RETURNING id`,
			p.Name, p.Description, p.CategoryID); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		for _, vs := range ps.Values {
			v := model.AttributeValue{Value: vs.Value, ProductID: p.ID, AttributeID: attributeIDs[vs.Attribute]}
			if _, err := tx.ExecContext(ctx, `INSERT INTO attribute_values (value, product_id, attribute_id) VALUES ($1, $2, $3)`,
				v.Value, v.ProductID, v.AttributeID); err != nil {
				return fmt.Errorf("insert value of %q for %q: %w", vs.Attribute, p.Name, err)
			}
		}
	}
	s.logger.Info("products created", zap.Int("count", len(ds.Products)))

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
