// Command agendactl runs migrations and account administration against an
// agenda backend database.
//
// Usage:
//
//	agendactl migrate up
//	agendactl user lock <username>
//	agendactl user promote <username>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/agenda-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cli.OpenApp).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "agendactl:", err)
		stop()
		os.Exit(1)
	}
}
