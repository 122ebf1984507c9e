package cli

import (
	"context"
	"fmt"
)

func (a *App) runSync(ctx context.Context) {
	fmt.Fprintln(a.out, "Syncing...")

	merged, err := a.sync.Run(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Sync failed:", err)
		return
	}

	live := 0
	for _, rec := range merged {
		if !rec.Deleted {
			live++
		}
	}
	fmt.Fprintf(a.out, "Sync complete: %d entries (%d deleted).\n", live, len(merged)-live)
}
