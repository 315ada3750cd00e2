package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
)

var (
	eligibleType        string
	eligibleCategory    string
	eligibleShowIllegal bool
	assetType           string
	assetColor          string
	assetStage          int32
)

var eligibleCmd = &cobra.Command{
	Use:   "eligible [slot] [slot1-id] [slot2-id] [slot3-id]",
	Short: "List the options for a slot given the current selection",
	Long: `List the options for a slot. Use "-" for an empty slot. Examples:

  eligible 2 7001
  eligible 3 7001 - 7044 --category Attack`,
	Args: cobra.RangeArgs(1, 4),
	RunE: eligible,
}

var checkValidityCmd = &cobra.Command{
	Use:   "check-validity [effect-id]...",
	Short: "Check whether one to three effects can share a relic",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  checkValidity,
}

var resolveOrderCmd = &cobra.Command{
	Use:   "resolve-order [effect-id] [effect-id] [effect-id]",
	Short: "Show the canonical roll order of three effects",
	Args:  cobra.ExactArgs(3),
	RunE:  resolveOrder,
}

var resolveAssetCmd = &cobra.Command{
	Use:   "resolve-asset",
	Short: "Resolve the relic image for a type, color and stage",
	RunE:  resolveAsset,
}

func init() {
	eligibleCmd.Flags().StringVar(&eligibleType, "type", "All", "relic type filter")
	eligibleCmd.Flags().StringVar(&eligibleCategory, "category", "", "category filter")
	eligibleCmd.Flags().BoolVar(&eligibleShowIllegal, "show-illegal", false, "include effects that collide on compatibility")

	resolveAssetCmd.Flags().StringVar(&assetType, "type", "Standard", "relic type")
	resolveAssetCmd.Flags().StringVar(&assetColor, "color", "", "relic color, required for stages 1-3")
	resolveAssetCmd.Flags().Int32Var(&assetStage, "stage", 0, "number of filled slots (0-3)")
}

func eligible(cmd *cobra.Command, args []string) error {
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid slot %q: %w", args[0], err)
	}

	slots := make([]string, 0, len(args)-1)
	for _, id := range args[1:] {
		if id == "-" {
			id = ""
		}
		slots = append(slots, id)
	}

	client, cleanup, err := createReliquaryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListEligible(ctx, &reliquaryv1alpha1.ListEligibleRequest{
		TypeChoice:  eligibleType,
		Slots:       slots,
		Slot:        int32(slot),
		Category:    eligibleCategory,
		ShowIllegal: eligibleShowIllegal,
	})
	if err != nil {
		return fmt.Errorf("failed to list eligible effects: %w", err)
	}

	w := cmd.OutOrStdout()
	if resp.Locked {
		fmt.Fprintf(w, "Slot %d is locked until the slots before it are filled\n", slot)
		return nil
	}
	if len(resp.BlockedCompatibilityIDs) > 0 {
		fmt.Fprintf(w, "Blocked groups: %s\n", strings.Join(resp.BlockedCompatibilityIDs, ", "))
	}
	fmt.Fprintf(w, "%d eligible, %d after category filter\n\n", resp.EligibleCount, len(resp.Options))
	for _, e := range resp.Options {
		printEffect(w, "", e)
	}
	return nil
}

func checkValidity(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createReliquaryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CheckValidity(ctx, &reliquaryv1alpha1.CheckValidityRequest{EffectIDs: args})
	if err != nil {
		return fmt.Errorf("failed to check validity: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validity: %s\n", resp.Validity)
	if len(resp.Collisions) > 0 {
		fmt.Fprintf(w, "Colliding groups: %s\n", strings.Join(resp.Collisions, ", "))
	}
	return nil
}

func resolveOrder(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createReliquaryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResolveOrder(ctx, &reliquaryv1alpha1.ResolveOrderRequest{EffectIDs: args})
	if err != nil {
		return fmt.Errorf("failed to resolve order: %w", err)
	}

	printOrder(cmd, resp.Order)
	return nil
}

func printOrder(cmd *cobra.Command, order *reliquaryv1alpha1.OrderResolution) {
	w := cmd.OutOrStdout()
	if order == nil || order.InOrder {
		fmt.Fprintln(w, "Effects are in roll order")
		return
	}

	fmt.Fprintln(w, "Correct order:")
	for i, e := range order.Sorted {
		marker := " "
		if i < len(order.Moved) && order.Moved[i] {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %d. [%s] %s\n", marker, i+1, e.EffectID, e.Label)
	}
}

func resolveAsset(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createReliquaryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResolveAsset(ctx, &reliquaryv1alpha1.ResolveAssetRequest{
		TypeChoice: assetType,
		Color:      assetColor,
		Stage:      assetStage,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve asset: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Path: %s\n", resp.Asset.Path)
	fmt.Fprintf(w, "URL: %s\n", resp.Asset.URL)
	if resp.Asset.Fallback {
		fmt.Fprintln(w, "(image missing, type default used)")
	}
	return nil
}
