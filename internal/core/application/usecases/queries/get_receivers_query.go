package queries

import (
	"errors"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// maxReceiverNames bounds the autocomplete list; the directory only needs to
// offer the names staff actually type.
const maxReceiverNames = 100

var (
	ErrGetReceiversQueryIsNotConstructed = errors.New(
		"GetReceiversQuery must be created via NewGetReceiversQuery constructor",
	)
)

// GetReceiversQuery retrieves known receiver names for front-desk
// autocomplete, most frequently used first.
//
// Example:
//
//	query, _ := NewGetReceiversQuery(20)
//	handler := NewGetReceiversQueryHandler(db)
//
//	names, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve receivers: %w", err)
//	}
type GetReceiversQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetReceiversQuery creates a query for receiver names. A zero limit
// means the default cap; the limit must stay within 1..100.
func NewGetReceiversQuery(limit int) (GetReceiversQuery, error) {
	if limit == 0 {
		limit = maxReceiverNames
	}
	if limit < 1 || limit > maxReceiverNames {
		return GetReceiversQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxReceiverNames)
	}

	return GetReceiversQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReceiversQueryIsNotConstructed if validation fails.
func (q GetReceiversQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiversQueryIsNotConstructed)
}

// Limit returns the maximum number of names to return.
func (q GetReceiversQuery) Limit() int {
	return q.limit
}
