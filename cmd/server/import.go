package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/reliquary-api/internal/config"
	"github.com/KirkDiggler/reliquary-api/internal/services/loader"
)

var (
	importFrom string
	importTo   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy an effects catalog into redis or sqlite",
	Long: `Read a catalog from any supported source and replace the contents of a
redis or sqlite catalog store with it. Examples:

  import --from reliquary.json --to sqlite://catalog.db
  import --from https://example.com/reliquary.json --to redis://localhost:6379/reliquary:catalog:effects`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFrom, "from", "", "catalog source (defaults to catalog_source)")
	importCmd.Flags().StringVar(&importTo, "to", "", "target store: redis://host:port/key or sqlite://path")
	_ = importCmd.MarkFlagRequired("to") // nolint:errcheck // flag is defined above
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	from := importFrom
	if from == "" {
		from = cfg.CatalogSource
	}

	svc, err := loader.New(&loader.Config{
		Timeout:      cfg.CatalogTimeout,
		RedisOptions: cfg.RedisOptions(),
	})
	if err != nil {
		return err
	}

	out, err := svc.Import(context.Background(), &loader.ImportInput{
		Source: from,
		Target: importTo,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d effects\n", out.Count)
	return nil
}
