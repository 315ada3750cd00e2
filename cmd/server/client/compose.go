package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
)

var (
	composeType  string
	composeColor string
)

var composeCmd = &cobra.Command{
	Use:   "compose [slot1-id] [slot2-id] [slot3-id]",
	Short: "Walk a session through picking up to three effects",
	Long: `Start a session and pick the given effects slot by slot, printing the
view after each step. Examples:

  compose 7001 7044 7102
  compose 7001 7044 --type Standard --color Blue`,
	Args: cobra.RangeArgs(0, 3),
	RunE: compose,
}

func init() {
	composeCmd.Flags().StringVar(&composeType, "type", "All", "relic type filter")
	composeCmd.Flags().StringVar(&composeColor, "color", "Random", "relic color or Random")
}

func compose(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createReliquaryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	started, err := client.StartSession(ctx, &reliquaryv1alpha1.StartSessionRequest{
		TypeChoice: composeType,
		ColorMode:  composeColor,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Session %s\n", started.SessionID)
	printView(cmd, started.View)

	state := started.State
	for i, id := range args {
		resp, err := client.ApplyEvent(ctx, &reliquaryv1alpha1.ApplyEventRequest{
			SessionID: started.SessionID,
			State:     state,
			Event: &reliquaryv1alpha1.Event{
				Kind:     "effect_change",
				Slot:     int32(i + 1),
				EffectID: id,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to select %s in slot %d: %w", id, i+1, err)
		}
		state = resp.State

		fmt.Fprintf(w, "\n> Slot %d = %s\n", i+1, id)
		printView(cmd, resp.View)
	}

	return nil
}

func printView(cmd *cobra.Command, view *reliquaryv1alpha1.View) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, view.Status)
	for _, slot := range view.Slots {
		switch {
		case slot.Selected != nil:
			fmt.Fprintf(w, "  Slot %d: [%s] %s\n", slot.Slot, slot.Selected.EffectID, slot.Selected.Label)
		case slot.Locked:
			fmt.Fprintf(w, "  Slot %d: locked\n", slot.Slot)
		default:
			fmt.Fprintf(w, "  Slot %d: %d options\n", slot.Slot, len(slot.Options))
		}
	}
	if view.Stage < 3 {
		fmt.Fprintf(w, "  %s\n", view.CountLine)
	}
	for _, c := range view.Cleared {
		fmt.Fprintf(w, "  Cleared slot %d (was %s)\n", c.Slot, c.EffectID)
	}
	fmt.Fprintf(w, "  Validity: %s  Color: %s  Image: %s\n", view.Validity, view.Color, view.Asset.URL)
	if view.Order != nil {
		printOrder(cmd, view.Order)
	}
}
