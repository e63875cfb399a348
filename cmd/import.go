package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getbloomy/bloomgo/bloom"
	"github.com/getbloomy/bloomgo/bulk"
)

var importConcurrent int

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Create todos, goals and issues in bulk from a YAML file",
	Long: `Read a YAML file describing todos, goals and issues and create them all.

Creation is best-effort: items that fail validation or are rejected by the
API are reported individually and do not stop the rest of the batch.

Example file:

  todos:
    - title: Send weekly report
      meeting_id: 123
      due_date: "2024-06-15"
  goals:
    - title: Launch beta
      meeting_id: 123
  issues:
    - title: Build is flaky
      meeting_id: 123`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().IntVar(&importConcurrent, "concurrent", 0, "max creations in flight at once (default from config)")
}

// importFile mirrors the YAML layout. Fields are pointers so that a key
// left out of the file stays distinguishable from one set to an empty value.
type importFile struct {
	Todos  []importTodo  `yaml:"todos"`
	Goals  []importGoal  `yaml:"goals"`
	Issues []importIssue `yaml:"issues"`
}

type importTodo struct {
	Title     *string `yaml:"title"`
	MeetingID *int64  `yaml:"meeting_id"`
	UserID    *int64  `yaml:"user_id"`
	DueDate   *string `yaml:"due_date"`
	Notes     *string `yaml:"notes"`
}

type importGoal struct {
	Title     *string `yaml:"title"`
	MeetingID *int64  `yaml:"meeting_id"`
	UserID    *int64  `yaml:"user_id"`
}

type importIssue struct {
	Title     *string `yaml:"title"`
	MeetingID *int64  `yaml:"meeting_id"`
	UserID    *int64  `yaml:"user_id"`
	Notes     *string `yaml:"notes"`
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var file importFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	total := len(file.Todos) + len(file.Goals) + len(file.Issues)
	if total == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	maxConcurrent := cfg.Bulk.MaxConcurrent
	if importConcurrent > 0 {
		maxConcurrent = importConcurrent
	}

	logger.Info().
		Int("todos", len(file.Todos)).
		Int("goals", len(file.Goals)).
		Int("issues", len(file.Issues)).
		Int("max_concurrent", maxConcurrent).
		Msg("Starting import")

	ctx := context.Background()
	var failures int

	if len(file.Todos) > 0 {
		inputs := make([]bloom.TodoInput, 0, len(file.Todos))
		for _, t := range file.Todos {
			inputs = append(inputs, bloom.TodoInput{
				Title:     t.Title,
				MeetingID: t.MeetingID,
				UserID:    t.UserID,
				DueDate:   t.DueDate,
				Notes:     t.Notes,
			})
		}

		result, err := client.Todos.CreateManyConcurrent(ctx, inputs, maxConcurrent)
		if err != nil {
			return err
		}
		failures += reportResult("todos", len(inputs), result.Failed, len(result.Successful))
	}

	if len(file.Goals) > 0 {
		inputs := make([]bloom.GoalInput, 0, len(file.Goals))
		for _, g := range file.Goals {
			inputs = append(inputs, bloom.GoalInput{
				Title:     g.Title,
				MeetingID: g.MeetingID,
				UserID:    g.UserID,
			})
		}

		result, err := client.Goals.CreateManyConcurrent(ctx, inputs, maxConcurrent)
		if err != nil {
			return err
		}
		failures += reportResult("goals", len(inputs), result.Failed, len(result.Successful))
	}

	if len(file.Issues) > 0 {
		inputs := make([]bloom.IssueInput, 0, len(file.Issues))
		for _, i := range file.Issues {
			inputs = append(inputs, bloom.IssueInput{
				Title:     i.Title,
				MeetingID: i.MeetingID,
				UserID:    i.UserID,
				Notes:     i.Notes,
			})
		}

		result, err := client.Issues.CreateManyConcurrent(ctx, inputs, maxConcurrent)
		if err != nil {
			return err
		}
		failures += reportResult("issues", len(inputs), result.Failed, len(result.Successful))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d items failed to import", failures, total)
	}

	fmt.Printf("\n✓ Imported %d items\n", total)
	return nil
}

// reportResult prints a per-category summary and returns the failure count.
func reportResult(category string, total int, failed []bulk.CreateError, succeeded int) int {
	fmt.Printf("\n%s: %d of %d created\n", category, succeeded, total)
	for _, f := range failed {
		fmt.Printf("  ✗ item %d: %s\n", f.Index+1, f.Message)
	}
	return len(failed)
}
