package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain/model"
)

// Compile-time interface check.
var _ model.References = (*References)(nil)

// References answers the exists/unique lookups of entity rules. Lookups made
// during a write run inside that write's transaction.
type References struct {
	db *Database
}

// NewReferences creates a References backed by db.
func NewReferences(db *Database) *References {
	return &References{db: db}
}

// Exists reports whether table has a row whose column equals value.
func (r *References) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	var n int64
	err := r.db.conn(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up %s.%s: %w", table, column, err)
	}
	return n > 0, nil
}
