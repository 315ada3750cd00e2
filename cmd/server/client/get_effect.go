package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
)

var getEffectCmd = &cobra.Command{
	Use:   "get-effect [effect-id]",
	Short: "Show one catalog effect",
	Args:  cobra.ExactArgs(1),
	RunE:  getEffect,
}

func getEffect(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createReliquaryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetEffect(ctx, &reliquaryv1alpha1.GetEffectRequest{EffectID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get effect: %w", err)
	}

	printEffect(cmd.OutOrStdout(), "", resp.Effect)
	return nil
}
