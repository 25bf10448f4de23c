// Package client provides test commands for the skill simulator gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the skill simulator",
	Long:  `Client commands allow you to test the skill simulator by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(searchArmorCmd)
	ClientCmd.AddCommand(searchWeaponsCmd)
	ClientCmd.AddCommand(searchCmd)
	ClientCmd.AddCommand(listWeaponNamesCmd)
	ClientCmd.AddCommand(listSkillsCmd)
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

// createSimulatorClient creates a simulator service client
func createSimulatorClient() (skillsimv1alpha1.SimulatorServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := skillsimv1alpha1.NewSimulatorServiceClient(conn)
	return client, cleanup, nil
}
