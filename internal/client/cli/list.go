package cli

import (
	"context"
	"fmt"
)

func (a *App) list(ctx context.Context) {
	all, err := a.entries.GetAll(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(all) == 0 {
		fmt.Fprintln(a.out, "No entries yet.")
		return
	}

	for _, e := range all {
		fmt.Fprintf(a.out, "%-36s  %-10s  %s\n", e.ID, e.Date, e.Preview(40))
	}
}
