package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReceiversQueryHandler retrieves known receiver names from the database.
type GetReceiversQueryHandler struct {
	db *gorm.DB
}

// NewGetReceiversQueryHandler creates a handler for receiver name queries.
// Requires a GORM database connection for query execution.
func NewGetReceiversQueryHandler(db *gorm.DB) GetReceiversQueryHandler {
	return GetReceiversQueryHandler{db: db}
}

// Handle executes the query and returns receiver names ordered by how often
// each one has checked parcels in, most active first.
func (h GetReceiversQueryHandler) Handle(ctx context.Context, query GetReceiversQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name
		FROM receivers
		ORDER BY times_seen DESC, name
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
