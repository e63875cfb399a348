package bloom

import (
	"context"
	"fmt"

	"github.com/getbloomy/bloomgo/bulk"
)

// IssueService handles operations related to issues.
type IssueService struct {
	client *Client
}

// Details retrieves a single issue by ID.
func (s *IssueService) Details(ctx context.Context, issueID int64) (*IssueDetails, error) {
	var w wireIssue
	if err := s.client.get(ctx, fmt.Sprintf("issues/%d", issueID), nil, &w); err != nil {
		return nil, err
	}
	details := issueDetailsFromWire(w)
	return &details, nil
}

// List returns issues for a user or for a meeting; the two filters are
// mutually exclusive. With neither set, the authenticated user's issues are
// returned.
func (s *IssueService) List(ctx context.Context, userID, meetingID int64) ([]IssueListItem, error) {
	if userID != 0 && meetingID != 0 {
		return nil, fmt.Errorf("provide either a user ID or a meeting ID, not both")
	}

	var endpoint string
	if meetingID != 0 {
		endpoint = fmt.Sprintf("l10/%d/issues", meetingID)
	} else {
		resolved, err := s.client.resolveUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		endpoint = fmt.Sprintf("issues/users/%d", resolved)
	}

	var data []wireIssue
	if err := s.client.get(ctx, endpoint, nil, &data); err != nil {
		return nil, err
	}
	return issueListFromWire(data), nil
}

// Create creates a new issue. MeetingID and Title are required; UserID
// defaults to the authenticated user.
func (s *IssueService) Create(ctx context.Context, in IssueInput) (*CreatedIssue, error) {
	if in.MeetingID == nil {
		return nil, fmt.Errorf("meeting_id is required")
	}
	if in.Title == nil {
		return nil, fmt.Errorf("title is required")
	}

	userID, err := s.client.resolveUserID(ctx, deref(in.UserID))
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"title":     *in.Title,
		"meetingid": *in.MeetingID,
		"ownerid":   userID,
	}
	if in.Notes != nil {
		payload["notes"] = *in.Notes
	}

	var w wireIssue
	if err := s.client.post(ctx, "issues/create", payload, &w); err != nil {
		return nil, err
	}

	issue := createdIssueFromWire(w)
	return &issue, nil
}

// Complete marks an issue as solved and returns its updated details.
func (s *IssueService) Complete(ctx context.Context, issueID int64) (*IssueDetails, error) {
	payload := map[string]any{"complete": true}
	if err := s.client.post(ctx, fmt.Sprintf("issues/%d/complete", issueID), payload, nil); err != nil {
		return nil, err
	}
	return s.Details(ctx, issueID)
}

// Update changes an issue's title and/or notes and returns its updated
// details. At least one field must be provided.
func (s *IssueService) Update(ctx context.Context, issueID int64, title, notes *string) (*IssueDetails, error) {
	payload := map[string]any{}
	if title != nil {
		payload["title"] = *title
	}
	if notes != nil {
		payload["notes"] = *notes
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("at least one field (title or notes) must be provided")
	}

	if err := s.client.put(ctx, fmt.Sprintf("issues/%d", issueID), payload); err != nil {
		return nil, err
	}
	return s.Details(ctx, issueID)
}

// CreateMany creates multiple issues best-effort, one at a time in input
// order. Failed items are reported in the result alongside the successes.
func (s *IssueService) CreateMany(ctx context.Context, issues []IssueInput) bulk.Result[CreatedIssue] {
	return bulk.RunSequential(ctx, issues, issueRequiredFields, s.createOne)
}

// CreateManyConcurrent is CreateMany with up to maxConcurrent creations in
// flight at once.
func (s *IssueService) CreateManyConcurrent(ctx context.Context, issues []IssueInput, maxConcurrent int) (bulk.Result[CreatedIssue], error) {
	return bulk.RunConcurrent(ctx, issues, issueRequiredFields, maxConcurrent, s.createOne)
}

func (s *IssueService) createOne(ctx context.Context, in IssueInput) (CreatedIssue, error) {
	issue, err := s.Create(ctx, in)
	if err != nil {
		return CreatedIssue{}, err
	}
	return *issue, nil
}
