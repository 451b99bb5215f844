package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/handlers/statblock/v1alpha1"
)

var (
	serverAddr string
	timeout    time.Duration
	listLimit  int
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for a running importer server",
	Long:  `Client commands call a running statblock server over gRPC.`,
}

var clientImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import and store a statblock export on the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", args[0])
		}

		req := &structpb.Struct{}
		if err := protojson.Unmarshal(data, req); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "statblock is not a JSON object")
		}

		return callServer(cmd, func(ctx context.Context, c v1alpha1.ImporterServiceClient) (proto.Message, error) {
			return c.ImportMonster(ctx, req)
		})
	},
}

var clientGetCmd = &cobra.Command{
	Use:   "get <monster-id>",
	Short: "Get a stored monster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return callServer(cmd, func(ctx context.Context, c v1alpha1.ImporterServiceClient) (proto.Message, error) {
			return c.GetMonster(ctx, wrapperspb.String(args[0]))
		})
	},
}

var clientMaliceCmd = &cobra.Command{
	Use:   "malice [file]",
	Short: "Parse malice feature prose on the server",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		req, err := structpb.NewStruct(map[string]interface{}{
			"text":           text,
			"characteristic": maliceCharacteristic,
		})
		if err != nil {
			return errors.Wrap(err, "failed to build request")
		}

		return callServer(cmd, func(ctx context.Context, c v1alpha1.ImporterServiceClient) (proto.Message, error) {
			return c.ParseMaliceText(ctx, req)
		})
	},
}

var clientRollCmd = &cobra.Command{
	Use:   "roll <monster-id> <ability>",
	Short: "Roll a stored monster's ability",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := structpb.NewStruct(map[string]any{
			"monster_id": args[0],
			"ability":    args[1],
		})
		if err != nil {
			return errors.Wrap(err, "failed to build request")
		}

		return callServer(cmd, func(ctx context.Context, c v1alpha1.ImporterServiceClient) (proto.Message, error) {
			return c.RollAbility(ctx, req)
		})
	},
}

var clientHistoryCmd = &cobra.Command{
	Use:   "history <monster-id>",
	Short: "Show a stored monster's recent power rolls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return callServer(cmd, func(ctx context.Context, c v1alpha1.ImporterServiceClient) (proto.Message, error) {
			return c.GetRollHistory(ctx, wrapperspb.String(args[0]))
		})
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored monsters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := structpb.NewStruct(map[string]any{"limit": listLimit})
		if err != nil {
			return errors.Wrap(err, "failed to build request")
		}

		return callServer(cmd, func(ctx context.Context, c v1alpha1.ImporterServiceClient) (proto.Message, error) {
			return c.ListMonsters(ctx, req)
		})
	},
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <monster-id>",
	Short: "Delete a stored monster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return callServer(cmd, func(ctx context.Context, c v1alpha1.ImporterServiceClient) (proto.Message, error) {
			return c.DeleteMonster(ctx, wrapperspb.String(args[0]))
		})
	},
}

func init() {
	clientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	clientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	clientCmd.AddCommand(clientImportCmd)
	clientCmd.AddCommand(clientGetCmd)
	clientCmd.AddCommand(clientMaliceCmd)
	clientCmd.AddCommand(clientRollCmd)
	clientCmd.AddCommand(clientHistoryCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientDeleteCmd)

	clientListCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum monsters to list (0 lists all)")
	clientMaliceCmd.Flags().StringVar(&maliceCharacteristic, "characteristic", string(drawsteel.CharacteristicMight),
		"highest characteristic of the monster (might, agility, reason, intuition, presence)")
}

// createClient creates an importer service client and its cleanup func
func createClient() (v1alpha1.ImporterServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewImporterServiceClient(conn), cleanup, nil
}

func callServer(cmd *cobra.Command, call func(context.Context, v1alpha1.ImporterServiceClient) (proto.Message, error)) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := call(ctx, client)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "failed to render response")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
