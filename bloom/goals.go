package bloom

import (
	"context"
	"fmt"
	"net/url"

	"github.com/getbloomy/bloomgo/bulk"
)

// GoalService handles operations related to goals, also known as "rocks".
type GoalService struct {
	client *Client
}

// List returns the active goals of a user. A userID of 0 means the
// authenticated user.
func (s *GoalService) List(ctx context.Context, userID int64) ([]GoalInfo, error) {
	userID, err := s.client.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("include_origin", "true")

	var data []wireGoal
	if err := s.client.get(ctx, fmt.Sprintf("rocks/user/%d", userID), params, &data); err != nil {
		return nil, err
	}
	return goalsFromWire(data), nil
}

// ListWithArchived returns both the active and the archived goals of a user.
func (s *GoalService) ListWithArchived(ctx context.Context, userID int64) (*GoalList, error) {
	userID, err := s.client.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	active, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	var data []wireGoal
	if err := s.client.get(ctx, fmt.Sprintf("archivedrocks/user/%d", userID), nil, &data); err != nil {
		return nil, err
	}

	return &GoalList{Active: active, Archived: archivedGoalsFromWire(data)}, nil
}

// Create creates a new goal. Title and MeetingID are required; UserID
// defaults to the authenticated user.
func (s *GoalService) Create(ctx context.Context, in GoalInput) (*CreatedGoal, error) {
	if in.Title == nil {
		return nil, fmt.Errorf("title is required")
	}
	if in.MeetingID == nil {
		return nil, fmt.Errorf("meeting_id is required")
	}

	userID, err := s.client.resolveUserID(ctx, deref(in.UserID))
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"title":             *in.Title,
		"accountableUserId": userID,
	}

	var w wireGoal
	if err := s.client.post(ctx, fmt.Sprintf("L10/%d/rocks", *in.MeetingID), payload, &w); err != nil {
		return nil, err
	}

	goal := createdGoalFromWire(w, *in.Title, *in.MeetingID, userID)
	return &goal, nil
}

// GoalUpdate carries the fields to change on a goal. Nil fields are left
// untouched; a nil AccountableUserID defaults to the authenticated user.
type GoalUpdate struct {
	Title             *string
	AccountableUserID *int64
	Status            *GoalStatus
}

// Update modifies a goal.
func (s *GoalService) Update(ctx context.Context, goalID int64, update GoalUpdate) error {
	userID, err := s.client.resolveUserID(ctx, deref(update.AccountableUserID))
	if err != nil {
		return err
	}

	payload := map[string]any{"accountableUserId": userID}
	if update.Title != nil {
		payload["title"] = *update.Title
	}
	if update.Status != nil {
		completion, err := completionValue(*update.Status)
		if err != nil {
			return err
		}
		payload["completion"] = completion
	}

	return s.client.put(ctx, fmt.Sprintf("rocks/%d", goalID), payload)
}

func completionValue(status GoalStatus) (string, error) {
	switch status {
	case GoalStatusOnTrack:
		return "OnTrack", nil
	case GoalStatusAtRisk:
		return "AtRisk", nil
	case GoalStatusComplete:
		return "Complete", nil
	}
	return "", fmt.Errorf("invalid status value %q: must be 'on', 'off', or 'complete'", status)
}

// Delete removes a goal.
func (s *GoalService) Delete(ctx context.Context, goalID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("rocks/%d", goalID))
}

// Archive archives a goal.
func (s *GoalService) Archive(ctx context.Context, goalID int64) error {
	return s.client.put(ctx, fmt.Sprintf("rocks/%d/archive", goalID), nil)
}

// Restore brings an archived goal back.
func (s *GoalService) Restore(ctx context.Context, goalID int64) error {
	return s.client.put(ctx, fmt.Sprintf("rocks/%d/restore", goalID), nil)
}

// CreateMany creates multiple goals best-effort, one at a time in input
// order to stay friendly to rate limits. Failed items are reported in the
// result alongside the successes; the call itself only observes caller
// errors, never per-item ones.
func (s *GoalService) CreateMany(ctx context.Context, goals []GoalInput) bulk.Result[CreatedGoal] {
	return bulk.RunSequential(ctx, goals, goalRequiredFields, s.createOne)
}

// CreateManyConcurrent is CreateMany with up to maxConcurrent creations in
// flight at once. Result ordering still follows the input order.
func (s *GoalService) CreateManyConcurrent(ctx context.Context, goals []GoalInput, maxConcurrent int) (bulk.Result[CreatedGoal], error) {
	return bulk.RunConcurrent(ctx, goals, goalRequiredFields, maxConcurrent, s.createOne)
}

func (s *GoalService) createOne(ctx context.Context, in GoalInput) (CreatedGoal, error) {
	goal, err := s.Create(ctx, in)
	if err != nil {
		return CreatedGoal{}, err
	}
	return *goal, nil
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
