// Package client provides test commands for the reliquary gRPC service
package client

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the reliquary service",
	Long:  `Client commands allow you to exercise the reliquary service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Catalog queries
	ClientCmd.AddCommand(listEffectsCmd)
	ClientCmd.AddCommand(getEffectCmd)

	// Rule checks
	ClientCmd.AddCommand(eligibleCmd)
	ClientCmd.AddCommand(checkValidityCmd)
	ClientCmd.AddCommand(resolveOrderCmd)
	ClientCmd.AddCommand(resolveAssetCmd)

	// Session flow
	ClientCmd.AddCommand(composeCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createReliquaryClient creates a reliquary service client
func createReliquaryClient() (reliquaryv1alpha1.ReliquaryServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return reliquaryv1alpha1.NewReliquaryServiceClient(conn), cleanup, nil
}

func printEffect(w io.Writer, indent string, e *reliquaryv1alpha1.Effect) {
	if e == nil {
		fmt.Fprintf(w, "%s(empty)\n", indent)
		return
	}
	fmt.Fprintf(w, "%s[%s] %s\n", indent, e.EffectID, e.Label)
	fmt.Fprintf(w, "%s  Type: %s  Category: %s\n", indent, e.RelicType, e.Category)
	if e.CompatibilityID != "" {
		fmt.Fprintf(w, "%s  Compatibility group: %s\n", indent, e.CompatibilityID)
	}
	if e.RollOrder != nil {
		fmt.Fprintf(w, "%s  Roll order: %d\n", indent, *e.RollOrder)
	}
	if e.IconURL != "" {
		fmt.Fprintf(w, "%s  Icon: %s\n", indent, e.IconURL)
	}
}
