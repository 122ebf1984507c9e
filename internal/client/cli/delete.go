package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/daybook/internal/common"
)

func (a *App) delete(ctx context.Context, id string) {
	if err := a.entries.DeleteByID(ctx, id); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		// The row may already be gone while the tombstone still needs
		// to propagate, so a missing entry is not fatal here.
	}

	if _, err := a.sync.DeleteEntry(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error propagating delete:", err)
		return
	}

	fmt.Fprintln(a.out, "Deleted", id)
}
