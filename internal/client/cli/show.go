package cli

import (
	"context"
	"fmt"
)

func (a *App) show(ctx context.Context, id string) {
	e, err := a.entries.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintf(a.out, "%s (%s)\n\n%s\n", e.Date, e.ID, e.PlainContent())
}
