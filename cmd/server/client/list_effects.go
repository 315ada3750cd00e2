package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
)

var (
	listType     string
	listCategory string
)

var listEffectsCmd = &cobra.Command{
	Use:   "list-effects",
	Short: "List catalog effects for a relic type and category",
	RunE:  listEffects,
}

func init() {
	listEffectsCmd.Flags().StringVar(&listType, "type", "All", "relic type: Standard, DepthOfNight, Both or All")
	listEffectsCmd.Flags().StringVar(&listCategory, "category", "", "effect category, empty for all")
}

func listEffects(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createReliquaryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListEffects(ctx, &reliquaryv1alpha1.ListEffectsRequest{
		TypeChoice: listType,
		Category:   listCategory,
	})
	if err != nil {
		return fmt.Errorf("failed to list effects: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Categories: %s\n", strings.Join(resp.Categories, ", "))
	fmt.Fprintf(w, "Showing %d of %d effects\n\n", len(resp.Effects), resp.Total)
	for _, e := range resp.Effects {
		printEffect(w, "", e)
	}

	return nil
}
