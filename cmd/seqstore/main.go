package main

import (
	"fmt"
	"os"

	"github.com/cqkv/seqstore"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	Dir     string
	Verbose bool
}

func newRootCmd() *cobra.Command {
	flags := new(rootFlags)
	cmd := &cobra.Command{
		Use:           "seqstore",
		Short:         "Inspect and append to sequential record store files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&flags.Dir, "dir", "d", ".", "Directory holding the store files")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Narrate store operations to stderr")

	cmd.AddCommand(
		newHeaderCmd(flags),
		newDumpCmd(flags),
		newAddCmd(flags),
	)
	return cmd
}

func (f *rootFlags) openDir(cmd *cobra.Command) (*seqstore.Dir, error) {
	level := zerolog.InfoLevel
	if f.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()

	return seqstore.OpenDir(f.Dir, seqstore.WithSink(seqstore.NewZerologSink(logger)))
}

func kindArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	switch args[0] {
	case "item", "order", "user":
		return nil
	}
	return fmt.Errorf("%w: %q", seqstore.ErrUnknownKind, args[0])
}
