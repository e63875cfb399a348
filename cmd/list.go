package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getbloomy/bloomgo/bloom"
	"github.com/getbloomy/bloomgo/filter"
)

var includeArchived bool

// meetingsCmd represents the meetings command
var meetingsCmd = &cobra.Command{
	Use:     "meetings",
	Short:   "List the meetings you attend",
	PreRunE: initializeApp,
	RunE:    runMeetings,
}

// todosCmd represents the todos command
var todosCmd = &cobra.Command{
	Use:     "todos",
	Short:   "List todos for a user or a meeting",
	PreRunE: initializeApp,
	RunE:    runTodos,
}

// goalsCmd represents the goals command
var goalsCmd = &cobra.Command{
	Use:     "goals",
	Short:   "List goals for a user",
	PreRunE: initializeApp,
	RunE:    runGoals,
}

// issuesCmd represents the issues command
var issuesCmd = &cobra.Command{
	Use:     "issues",
	Short:   "List issues for a user or a meeting",
	PreRunE: initializeApp,
	RunE:    runIssues,
}

func init() {
	rootCmd.AddCommand(meetingsCmd)
	rootCmd.AddCommand(todosCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(issuesCmd)

	addFilterFlags(meetingsCmd)

	addFilterFlags(todosCmd)
	todosCmd.Flags().Int64Var(&userID, "user", 0, "list todos for this user (default: you)")
	todosCmd.Flags().Int64Var(&meetingID, "meeting", 0, "list todos for this meeting instead")

	addFilterFlags(goalsCmd)
	goalsCmd.Flags().Int64Var(&userID, "user", 0, "list goals for this user (default: you)")
	goalsCmd.Flags().BoolVar(&includeArchived, "archived", false, "include archived goals")

	addFilterFlags(issuesCmd)
	issuesCmd.Flags().Int64Var(&userID, "user", 0, "list issues for this user (default: you)")
	issuesCmd.Flags().Int64Var(&meetingID, "meeting", 0, "list issues for this meeting instead")
}

func runMeetings(cmd *cobra.Command, args []string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	meetings, err := client.Meetings.List(ctx, 0)
	if err != nil {
		return err
	}
	meetings = filter.Apply(f, meetings, filter.MeetingEnv)

	if len(meetings) == 0 {
		fmt.Println("No meetings found.")
		return nil
	}

	fmt.Printf("\nFound %d meetings:\n", len(meetings))
	fmt.Println(strings.Repeat("-", 60))
	for _, m := range meetings {
		fmt.Printf("• %s (ID: %d)\n", m.Title, m.ID)
	}
	return nil
}

func runTodos(cmd *cobra.Command, args []string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	todos, err := client.Todos.List(ctx, userID, meetingID)
	if err != nil {
		return err
	}
	todos = filter.Apply(f, todos, filter.TodoEnv)

	if len(todos) == 0 {
		fmt.Println("No todos found.")
		return nil
	}

	fmt.Printf("\nFound %d todos:\n", len(todos))
	fmt.Println(strings.Repeat("-", 60))
	for _, t := range todos {
		fmt.Printf("• %s", t.Title)
		if t.CompletedAt != nil {
			fmt.Printf(" [DONE]")
		}
		fmt.Println()
		if t.DueDate != "" {
			fmt.Printf("  Due: %s\n", t.DueDate)
		}
	}
	return nil
}

func runGoals(cmd *cobra.Command, args []string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if includeArchived {
		list, err := client.Goals.ListWithArchived(ctx, userID)
		if err != nil {
			return err
		}

		active := filter.Apply(f, list.Active, filter.GoalEnv)
		printGoals(active)

		if len(list.Archived) > 0 {
			fmt.Printf("\nArchived (%d):\n", len(list.Archived))
			for _, g := range list.Archived {
				fmt.Printf("• %s [%s]\n", g.Title, g.Status)
			}
		}
		return nil
	}

	goals, err := client.Goals.List(ctx, userID)
	if err != nil {
		return err
	}
	printGoals(filter.Apply(f, goals, filter.GoalEnv))
	return nil
}

func runIssues(cmd *cobra.Command, args []string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	issues, err := client.Issues.List(ctx, userID, meetingID)
	if err != nil {
		return err
	}
	issues = filter.Apply(f, issues, filter.IssueEnv)

	if len(issues) == 0 {
		fmt.Println("No issues found.")
		return nil
	}

	fmt.Printf("\nFound %d issues:\n", len(issues))
	fmt.Println(strings.Repeat("-", 60))
	for _, i := range issues {
		fmt.Printf("• %s (%s)\n", i.Title, i.MeetingTitle)
	}
	return nil
}

func printGoals(goals []bloom.GoalInfo) {
	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return
	}

	fmt.Printf("\nFound %d goals:\n", len(goals))
	fmt.Println(strings.Repeat("-", 60))
	for _, g := range goals {
		fmt.Printf("• %s [%s]", g.Title, g.Status)
		if g.MeetingTitle != "" {
			fmt.Printf(" (%s)", g.MeetingTitle)
		}
		fmt.Println()
	}
}
