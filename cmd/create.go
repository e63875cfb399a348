package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getbloomy/bloomgo/bloom"
)

var (
	createTitle   string
	createMeeting int64
	createDue     string
	createNotes   string
)

// todoAddCmd represents the todos add command
var todoAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Create a single todo",
	PreRunE: initializeApp,
	RunE:    runTodoAdd,
}

func init() {
	todosCmd.AddCommand(todoAddCmd)

	todoAddCmd.Flags().StringVar(&createTitle, "title", "", "todo title (required)")
	todoAddCmd.Flags().Int64Var(&createMeeting, "meeting", 0, "meeting ID (required)")
	todoAddCmd.Flags().StringVar(&createDue, "due", "", "due date (YYYY-MM-DD)")
	todoAddCmd.Flags().StringVar(&createNotes, "notes", "", "notes")
	_ = todoAddCmd.MarkFlagRequired("title")
	_ = todoAddCmd.MarkFlagRequired("meeting")
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	in := bloom.TodoInput{
		Title:     bloom.String(createTitle),
		MeetingID: bloom.Int64(createMeeting),
	}
	if createDue != "" {
		in.DueDate = bloom.String(createDue)
	}
	if createNotes != "" {
		in.Notes = bloom.String(createNotes)
	}

	todo, err := client.Todos.Create(context.Background(), in)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Created todo %d: %s\n", todo.ID, todo.Title)
	return nil
}
