package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// addChannelCmd holds the flags for the 'add-channel' subcommand.
type addChannelCmd struct {
	name string
}

func (*addChannelCmd) Name() string     { return "add-channel" }
func (*addChannelCmd) Synopsis() string { return "add a sales channel" }
func (*addChannelCmd) Usage() string {
	return `pst add-channel -name <name>

  Adds a channel to the channel set. Duplicates are ignored. The channel set
  is rebuilt from the sales file on load, so a channel with no sales yet only
  lives for this invocation.
`
}

func (c *addChannelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Channel name (required).")
}

func (c *addChannelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.AddChannel(c.name) {
		fmt.Fprintf(os.Stderr, "Error: empty or duplicate channel %q\n", c.name)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Channels: %s\n", strings.Join(ledger.Channels(), ", "))
	return subcommands.ExitSuccess
}
