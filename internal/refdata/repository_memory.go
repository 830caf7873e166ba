package refdata

import (
	"context"
	"errors"
)

// InMemoryRepository serves tables supplied directly. Used by tests
// and by embedders that do their own loading.
type InMemoryRepository struct {
	tables *Tables
}

func NewInMemoryRepository(tables *Tables) *InMemoryRepository {
	return &InMemoryRepository{tables: tables}
}

func (r *InMemoryRepository) LoadTables(ctx context.Context) (*Tables, error) {
	if r.tables == nil {
		return nil, errors.New("no tables supplied")
	}
	t := *r.tables
	t.Pricing = t.Pricing.ApplyDefaults()
	return &t, nil
}
