package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const (
	linkedToAny = `EXISTS (SELECT 1 FROM attribute_categories ac WHERE ac.attribute_id = a.id AND ac.category_id IN (?))`
	unlinked    = `NOT EXISTS (SELECT 1 FROM attribute_categories ac WHERE ac.attribute_id = a.id)`

	selectSummary = `
        SELECT a.id, a.name, a.type, a.created_at, a.updated_at,
            (SELECT COUNT(*) FROM attribute_values av WHERE av.attribute_id = a.id) AS products_in_use,
            COALESCE((
                SELECT STRING_AGG(DISTINCT c.name, ', ' ORDER BY c.name)
                FROM attribute_categories ac
                JOIN categories c ON c.id = ac.category_id
                WHERE ac.attribute_id = a.id
            ), '') AS product_category
        FROM attributes a`
)

func (r *PGRepository) Count(ctx context.Context, q *dto.AttributeQuery) (int, error) {
	where, args := whereClause(q)
	query, args, err := r.bind("SELECT COUNT(*) FROM attributes a"+where, args)
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count attributes: %w", err)
	}
	return count, nil
}

func (r *PGRepository) FindPage(ctx context.Context, q *dto.AttributeQuery) ([]model.AttributeSummary, error) {
	where, args := whereClause(q)

	column, ok := dto.SortColumns[q.SortBy]
	if !ok {
		column = dto.SortColumns[dto.DefaultSortBy]
	}
	direction := "ASC"
	if strings.EqualFold(q.SortOrder, "DESC") {
		direction = "DESC"
	}

	raw := fmt.Sprintf("%s%s ORDER BY %s %s, a.id %s LIMIT ? OFFSET ?", selectSummary, where, column, direction, direction)
	query, args, err := r.bind(raw, append(args, q.Limit, q.Offset))
	if err != nil {
		return nil, err
	}

	var rows []model.AttributeSummary
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find attributes: %w", err)
	}
	return rows, nil
}

func (r *PGRepository) FindDirectLinks(ctx context.Context, attributeIDs []int64) (map[int64][]int64, error) {
	links := make(map[int64][]int64, len(attributeIDs))
	if len(attributeIDs) == 0 {
		return links, nil
	}

	query, args, err := r.bind(`
        SELECT attribute_id, category_id
        FROM attribute_categories
        WHERE attribute_id IN (?)
        ORDER BY attribute_id, category_id`, []any{attributeIDs})
	if err != nil {
		return nil, err
	}

	var rows []model.AttributeLink
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find attribute links: %w", err)
	}
	for _, l := range rows {
		links[l.AttributeID] = append(links[l.AttributeID], l.CategoryID)
	}
	return links, nil
}

// bind expands IN (?) lists and rebinds to the driver's placeholder style.
func (r *PGRepository) bind(query string, args []any) (string, []any, error) {
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("expand query args: %w", err)
	}
	return r.DB.Rebind(query), args, nil
}

func whereClause(q *dto.AttributeQuery) (string, []any) {
	conditions := []string{}
	args := []any{}

	if q.Search != "" {
		conditions = append(conditions, "a.name ILIKE ?")
		args = append(args, "%"+escapeLike(q.Search)+"%")
	}
	if q.Links != nil {
		cond, linkArgs := linkCondition(q.Links)
		conditions = append(conditions, cond)
		args = append(args, linkArgs...)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func linkCondition(f *dto.LinkFilter) (string, []any) {
	alternatives := []string{}
	args := []any{}

	if f.Direct && len(f.Requested) > 0 {
		alternatives = append(alternatives, linkedToAny)
		args = append(args, f.Requested)
	}
	if f.InheritedOnly && len(f.Inherited) > 0 {
		if len(f.Requested) > 0 {
			alternatives = append(alternatives, "("+linkedToAny+" AND NOT "+linkedToAny+")")
			args = append(args, f.Inherited, f.Requested)
		} else {
			alternatives = append(alternatives, linkedToAny)
			args = append(args, f.Inherited)
		}
	}
	if f.Global {
		alternatives = append(alternatives, unlinked)
	}

	if len(alternatives) == 0 {
		return "FALSE", args
	}
	return "(" + strings.Join(alternatives, " OR ") + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes search a literal substring match.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
