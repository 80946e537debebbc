package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <filter-id>",
		Short: "Show the parameters of a stored filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid filter id %q: %w", args[0], err)
			}

			svc, closer, err := openService()
			if err != nil {
				return err
			}
			defer closer()

			info, err := svc.Info(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:            %d\n", info.ID)
			fmt.Fprintf(out, "bits (m):      %d\n", info.BitCount)
			fmt.Fprintf(out, "hashes (k):    %d\n", info.HashCount)
			fmt.Fprintf(out, "items:         %d\n", info.ItemCount)
			fmt.Fprintf(out, "fill ratio:    %.4f\n", info.FillRatio)
			fmt.Fprintf(out, "est. fp rate:  %.6f\n", info.EstimateFP)
			fmt.Fprintf(out, "stored bytes:  %d\n", info.BlobBytes)
			return nil
		},
	}
}
