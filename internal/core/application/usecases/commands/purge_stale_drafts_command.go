package commands

import (
	"errors"
	"time"

	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/guard"
)

var ErrPurgeStaleDraftsCommandIsNotConstructed = errors.New(
	"PurgeStaleDraftsCommand must be created via NewPurgeStaleDraftsCommand constructor",
)

// PurgeStaleDraftsCommand deletes drafts nobody has touched for longer than ttl.
type PurgeStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeStaleDraftsCommand(ttl time.Duration) (PurgeStaleDraftsCommand, error) {
	if ttl <= 0 {
		return PurgeStaleDraftsCommand{}, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "∞")
	}
	return PurgeStaleDraftsCommand{ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleDraftsCommandIsNotConstructed)
}

func (c PurgeStaleDraftsCommand) TTL() time.Duration {
	return c.ttl
}
