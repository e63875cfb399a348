package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the authenticated user",
	PreRunE: initializeApp,
	RunE:    runWhoami,
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test the connection to Bloom Growth",
	Long:    `Test the connection to the Bloom Growth API and display basic information.`,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(testCmd)
	whoamiCmd.Flags().BoolVar(&includeReports, "reports", false, "include direct reports")
}

var includeReports bool

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := client.UserID(ctx)
	if err != nil {
		return err
	}

	user, err := client.Users.Details(ctx, id, includeReports, true)
	if err != nil {
		return err
	}

	fmt.Printf("%s (ID: %d)\n", user.Name, user.ID)
	for _, p := range user.Positions {
		fmt.Printf("  Seat: %s\n", p.Name)
	}
	if includeReports && len(user.DirectReports) > 0 {
		fmt.Printf("  Direct reports:\n")
		for _, r := range user.DirectReports {
			fmt.Printf("    • %s (ID: %d)\n", r.Name, r.ID)
		}
	}
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Bloom Growth at %s...\n", cfg.Bloom.URL)

	ctx := context.Background()
	if err := client.TestConnection(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Connection successful!")

	meetings, err := client.Meetings.List(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to list meetings: %w", err)
	}

	fmt.Printf("\nBloom Growth Statistics:\n")
	fmt.Printf("- Meetings attended: %d\n", len(meetings))

	if len(meetings) > 0 {
		fmt.Printf("\nYour meetings:\n")
		for _, m := range meetings {
			fmt.Printf("  • %s (ID: %d)\n", m.Title, m.ID)
		}
	}

	return nil
}
