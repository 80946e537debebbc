package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stella3d/bloomer/store"
	"github.com/stella3d/bloomer/zstdutil"
)

// NewRootCmd creates the root bloomer command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bloomer",
		Short:         "bloomer — persistable bloom filter store",
		Long:          "bloomer builds bloom filters from batches of items, stores them in SQLite by id, and batch-queries them later.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initViper(cmd)
		},
	}

	// Global flags — these map to viper keys via initViper, so each can also
	// come from the environment (BLOOMER_DB and friends).
	root.PersistentFlags().String("db", "bloomer.db", "path to the filter database")
	root.PersistentFlags().Int("zstd-level", zstdutil.DefaultLevel, "zstd compression level for stored filters")
	root.PersistentFlags().Bool("no-compress", false, "store filter blobs uncompressed")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCreateCmd(),
		newQueryCmd(),
		newInfoCmd(),
	)

	return root
}

// initViper binds the persistent flags to viper keys and wires up env
// variables so the standard precedence (flag > env > default) applies.
func initViper(cmd *cobra.Command) error {
	v := viper.GetViper()

	v.SetEnvPrefix("BLOOMER")
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("db", flags.Lookup("db")); err != nil {
		return err
	}
	if err := v.BindPFlag("zstd_level", flags.Lookup("zstd-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("no_compress", flags.Lookup("no-compress")); err != nil {
		return err
	}
	if err := v.BindPFlag("verbose", flags.Lookup("verbose")); err != nil {
		return err
	}
	return nil
}

// openService opens the configured registry and builds the service around it.
// The returned closer must be called when the command finishes.
func openService() (*store.Service, func(), error) {
	v := viper.GetViper()

	level := slog.LevelInfo
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg, err := store.OpenSQLite(v.GetString("db"))
	if err != nil {
		return nil, nil, err
	}

	opts := []store.ServiceOption{
		store.WithLogger(logger),
		store.WithCompressionLevel(v.GetInt("zstd_level")),
	}
	if v.GetBool("no_compress") {
		opts = append(opts, store.WithoutCompression())
	}

	return store.NewService(reg, opts...), func() { _ = reg.Close() }, nil
}
