package commands

import (
	"errors"
	"strings"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var (
	ErrRecordReceiverCommandIsNotConstructed = errors.New(
		"RecordReceiverCommand must be created via NewRecordReceiverCommand constructor",
	)
)

// RecordReceiverCommand represents a request to record a staff name in the
// known-receivers directory after a successful check-in. Repeat names bump
// the usage counter rather than adding rows.
type RecordReceiverCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewRecordReceiverCommand creates a command to record a receiver name.
// The name must be non-empty after trimming.
func NewRecordReceiverCommand(name string) (RecordReceiverCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RecordReceiverCommand{}, errs.NewValueIsRequiredError("name")
	}

	return RecordReceiverCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordReceiverCommandIsNotConstructed if validation fails.
func (c RecordReceiverCommand) Validate() error {
	return c.guard.Validate(ErrRecordReceiverCommandIsNotConstructed)
}

// Name returns the staff member's name.
func (c RecordReceiverCommand) Name() string {
	return c.name
}
