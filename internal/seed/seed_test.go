package seed

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

func TestDemoDatasetIsValid(t *testing.T) {
	ds := Demo()
	require.NoError(t, ds.Validate())
	assert.Len(t, ds.Categories, 12)
	assert.Len(t, ds.Attributes, 16)
	assert.Len(t, ds.Products, 3)
}

func TestValidateRejectsBrokenReferences(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
	}{
		{"parent after child", Dataset{Categories: []CategorySeed{{Name: "Child", Parent: "Root"}, {Name: "Root"}}}},
		{"duplicate category", Dataset{Categories: []CategorySeed{{Name: "Root"}, {Name: "Root"}}}},
		{"attribute category", Dataset{Attributes: []AttributeSeed{{Name: "Size", Categories: []string{"Shoes"}}}}},
		{"product attribute", Dataset{
			Categories: []CategorySeed{{Name: "Root"}},
			Products:   []ProductSeed{{Name: "P", Category: "Root", Values: []ValueSeed{{"Weight", "1kg"}}}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.ds.Validate())
		})
	}
}

func smallDataset() Dataset {
	return Dataset{
		Categories: []CategorySeed{{Name: "Beverages"}, {Name: "Flavoured Drinks", Parent: "Beverages"}},
		Attributes: []AttributeSeed{{Name: "Flavour", Type: model.AttributeTypeDropdown, Categories: []string{"Flavoured Drinks"}}},
		Products: []ProductSeed{{
			Name:        "Milk Tea",
			Description: "Original flavor",
			Category:    "Flavoured Drinks",
			Values:      []ValueSeed{{"Flavour", "Original"}},
		}},
	}
}

func expectClear(mock sqlmock.Sqlmock) {
	for _, table := range []string{"attribute_values", "products", "attribute_categories", "attributes", "categories"} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func idRow(id int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"}).AddRow(id)
}

func TestSeed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	expectClear(mock)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).WithArgs("Beverages", nil).WillReturnRows(idRow(10))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).WithArgs("Flavoured Drinks", int64(10)).WillReturnRows(idRow(11))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO attributes`)).WithArgs("Flavour", "Dropdown").WillReturnRows(idRow(20))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO attribute_categories`)).WithArgs(int64(20), int64(11)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).WithArgs("Milk Tea", "Original flavor", int64(11)).WillReturnRows(idRow(30))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO attribute_values`)).WithArgs("Original", int64(30), int64(20)).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = NewSeeder(sqlx.NewDb(db, "pgx"), logger.NewNop()).Seed(context.Background(), smallDataset())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	expectClear(mock)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	err = NewSeeder(sqlx.NewDb(db, "pgx"), logger.NewNop()).Seed(context.Background(), smallDataset())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `insert category "Beverages"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
