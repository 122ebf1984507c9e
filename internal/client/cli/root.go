package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to daybook (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, "daybook> ")
		// Read through the shared app reader so command prompts and the
		// REPL never race over buffered stdin bytes.
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: add, list, show <id>, edit <id>, delete <id>, sync, exit")

		case "add":
			a.add(ctx)
		case "list":
			a.list(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: show <id>")
				continue
			}
			a.show(ctx, args[0])
		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			a.edit(ctx, args[0])
		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			a.delete(ctx, args[0])
		case "sync":
			a.runSync(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
