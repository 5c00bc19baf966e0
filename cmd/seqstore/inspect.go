package main

import (
	"fmt"
	"io"
	"time"

	"github.com/cqkv/seqstore/keydir"
	"github.com/cqkv/seqstore/model"
	"github.com/spf13/cobra"
)

func newHeaderCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "header <kind>",
		Short: "Print the record count of a kind's file",
		Args:  kindArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := flags.openDir(cmd)
			if err != nil {
				return err
			}
			defer dir.Close()

			header, ok, err := dir.HeaderKind(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no file\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records\n", args[0], header.Count)
			return nil
		},
	}
}

func newDumpCmd(flags *rootFlags) *cobra.Command {
	var live bool
	cmd := &cobra.Command{
		Use:   "dump <kind>",
		Short: "Print every record of a kind in file order",
		Args:  kindArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := flags.openDir(cmd)
			if err != nil {
				return err
			}
			defer dir.Close()

			records, err := dir.ReadKind(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !live {
				for _, rec := range records {
					printEntity(out, rec)
				}
				return nil
			}

			iter := keydir.Build(records).Iterator()
			defer iter.Close()
			for iter.Rewind(); iter.Valid(); iter.Next() {
				printEntity(out, iter.Value().Entity)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "Only the latest version of each identifier, skipping tombstoned ones")
	return cmd
}

func printEntity(w io.Writer, e model.Entity) {
	var mark string
	if e.IsTombstoned() {
		mark = " (tombstone)"
	}

	switch v := e.(type) {
	case *model.Item:
		fmt.Fprintf(w, "item %d%s content=%q price=%s created=%s\n",
			v.ID, mark, v.Content, v.Price, v.CreatedAt.Time().Format(time.RFC3339))
	case *model.Order:
		fmt.Fprintf(w, "order %d%s item=%d total=%g\n", v.ID, mark, v.ItemID, v.TotalPrice)
	case *model.User:
		fmt.Fprintf(w, "user %d%s username=%q role=%s\n", v.ID, mark, v.Username, v.Role)
	default:
		fmt.Fprintf(w, "%s %d%s\n", e.Kind(), e.EntityID(), mark)
	}
}
