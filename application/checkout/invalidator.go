package checkout

import (
	"context"
	stderrors "errors"
)

// Invalidators runs every invalidator in order. All of them are tried even
// when one fails; the failures are joined.
type Invalidators []HistoryInvalidator

func (inv Invalidators) Invalidate(ctx context.Context, userID uint64) error {
	var errs []error
	for _, i := range inv {
		if err := i.Invalidate(ctx, userID); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
