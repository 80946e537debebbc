package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	var verdictOnly bool

	cmd := &cobra.Command{
		Use:   "query <filter-id> [items-file]",
		Short: "Batch-query a stored filter",
		Long: "Test newline-delimited items from a file (or stdin) against the " +
			"filter stored under the given id. One verdict is printed per item, " +
			"in input order.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid filter id %q: %w", args[0], err)
			}

			src, err := itemSource(args, 1)
			if err != nil {
				return err
			}
			defer func() { _ = src.Close() }()

			items, err := readItems(src)
			if err != nil {
				return err
			}

			svc, closer, err := openService()
			if err != nil {
				return err
			}
			defer closer()

			results, err := svc.QueryFilter(cmd.Context(), id, items)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, r := range results {
				if verdictOnly {
					fmt.Fprintln(out, r)
					continue
				}
				fmt.Fprintf(out, "%t\t%s\n", r, items[i])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verdictOnly, "verdict-only", false, "print only true/false, without echoing items")
	return cmd
}
