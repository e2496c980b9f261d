package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
	"github.com/etnz/printsales/web"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr string
	demo bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the local dashboard" }
func (*serveCmd) Usage() string {
	return `pst serve [-addr <addr>] [-demo]

  Serves the JSON API and the dashboard page on the given address. The
  ledger is loaded from the entity files and held in memory: mutations are
  written back on every change. With -demo an in-memory demo ledger is
  served instead and nothing is written.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:8990", "Address to listen on.")
	f.BoolVar(&c.demo, "demo", false, "Serve an in-memory demo ledger.")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var ledger *printsales.Ledger
	var persist func(*printsales.Ledger) error

	if c.demo {
		ledger = printsales.NewSeedLedger(printsales.LoadCurrency())
	} else {
		var err error
		ledger, err = loadLedger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		persist = saveLedger
	}

	srv := web.NewServer(ledger, persist)
	log.Printf("serving dashboard on http://%s", c.addr)
	if err := http.ListenAndServe(c.addr, srv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
