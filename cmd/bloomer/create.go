package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	var rate float64

	cmd := &cobra.Command{
		Use:   "create [items-file]",
		Short: "Build a filter from newline-delimited items and store it",
		Long: "Build a bloom filter from items read from a file (or stdin), " +
			"persist it in the database, and print the new filter id.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := itemSource(args, 0)
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

			id, err := svc.CreateFilter(cmd.Context(), rate, items)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0.01, "target false positive rate, in (0, 1)")
	return cmd
}
