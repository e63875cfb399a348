package bloom

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/getbloomy/bloomgo/bulk"
)

// MeetingService handles operations related to L10 meetings.
type MeetingService struct {
	client *Client
}

// List returns the meetings a user attends. A userID of 0 means the
// authenticated user.
func (s *MeetingService) List(ctx context.Context, userID int64) ([]MeetingListItem, error) {
	userID, err := s.client.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var data []wireMeeting
	if err := s.client.get(ctx, fmt.Sprintf("L10/%d/list", userID), nil, &data); err != nil {
		return nil, err
	}

	meetings := make([]MeetingListItem, 0, len(data))
	for _, w := range data {
		meetings = append(meetings, MeetingListItem{ID: w.ID, Title: w.Name})
	}
	return meetings, nil
}

// Attendees lists a meeting's attendees.
func (s *MeetingService) Attendees(ctx context.Context, meetingID int64) ([]AttendeeInfo, error) {
	var data []wireOwner
	if err := s.client.get(ctx, fmt.Sprintf("L10/%d/attendees", meetingID), nil, &data); err != nil {
		return nil, err
	}

	attendees := make([]AttendeeInfo, 0, len(data))
	for _, w := range data {
		attendees = append(attendees, AttendeeInfo{ID: w.ID, Name: w.Name})
	}
	return attendees, nil
}

// Issues lists a meeting's issues, optionally including resolved ones.
func (s *MeetingService) Issues(ctx context.Context, meetingID int64, includeClosed bool) ([]MeetingIssue, error) {
	params := url.Values{}
	params.Set("include_resolved", strconv.FormatBool(includeClosed))

	var data []wireIssue
	if err := s.client.get(ctx, fmt.Sprintf("L10/%d/issues", meetingID), params, &data); err != nil {
		return nil, err
	}

	issues := make([]MeetingIssue, 0, len(data))
	for _, w := range data {
		issues = append(issues, meetingIssueFromWire(w, meetingID))
	}
	return issues, nil
}

// Todos lists a meeting's todos, optionally including closed ones.
func (s *MeetingService) Todos(ctx context.Context, meetingID int64, includeClosed bool) ([]MeetingTodo, error) {
	params := url.Values{}
	params.Set("INCLUDE_CLOSED", strconv.FormatBool(includeClosed))

	var data []wireTodo
	if err := s.client.get(ctx, fmt.Sprintf("L10/%d/todos", meetingID), params, &data); err != nil {
		return nil, err
	}

	todos := make([]MeetingTodo, 0, len(data))
	for _, w := range data {
		todos = append(todos, meetingTodoFromWire(w))
	}
	return todos, nil
}

// Metrics lists the scorecard measurables tracked by a meeting.
func (s *MeetingService) Metrics(ctx context.Context, meetingID int64) ([]MetricInfo, error) {
	var data []wireMeasurable
	if err := s.client.get(ctx, fmt.Sprintf("L10/%d/measurables", meetingID), nil, &data); err != nil {
		return nil, err
	}
	return metricsFromWire(data), nil
}

// Details aggregates a meeting with its attendees, issues, todos and
// metrics. The four subresource fetches run concurrently; a failure in any
// of them fails the whole call.
func (s *MeetingService) Details(ctx context.Context, meetingID int64, includeClosed bool) (*MeetingDetails, error) {
	meetings, err := s.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	details := &MeetingDetails{ID: meetingID}
	for _, m := range meetings {
		if m.ID == meetingID {
			details.Title = m.Title
			break
		}
	}
	if details.Title == "" {
		return nil, fmt.Errorf("meeting with ID %d not found", meetingID)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details.Attendees, err = s.Attendees(ctx, meetingID)
		return err
	})
	g.Go(func() error {
		var err error
		details.Issues, err = s.Issues(ctx, meetingID, includeClosed)
		return err
	})
	g.Go(func() error {
		var err error
		details.Todos, err = s.Todos(ctx, meetingID, includeClosed)
		return err
	})
	g.Go(func() error {
		var err error
		details.Metrics, err = s.Metrics(ctx, meetingID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// Create creates a new meeting and adds the given attendees to it.
func (s *MeetingService) Create(ctx context.Context, title string, addSelf bool, attendees []int64) (*CreatedMeeting, error) {
	payload := map[string]any{
		"title":   title,
		"addSelf": addSelf,
	}

	var w wireCreatedMeeting
	if err := s.client.post(ctx, "L10/create", payload, &w); err != nil {
		return nil, err
	}

	for _, attendeeID := range attendees {
		if err := s.client.post(ctx, fmt.Sprintf("L10/%d/attendees/%d", w.MeetingID, attendeeID), nil, nil); err != nil {
			return nil, fmt.Errorf("failed to add attendee %d: %w", attendeeID, err)
		}
	}

	return &CreatedMeeting{MeetingID: w.MeetingID, Title: title, Attendees: attendees}, nil
}

// Delete removes a meeting.
func (s *MeetingService) Delete(ctx context.Context, meetingID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("L10/%d", meetingID))
}

// GetMany fetches the details of multiple meetings best-effort, one at a
// time in input order. Meetings that cannot be fetched are reported in the
// result's failed entries, keyed by their input position.
func (s *MeetingService) GetMany(ctx context.Context, meetingIDs []int64) bulk.Result[MeetingDetails] {
	return bulk.GetSequential(ctx, meetingIDs, s.getOne)
}

// GetManyConcurrent is GetMany with up to maxConcurrent fetches in flight at
// once. Result ordering still follows the input order.
func (s *MeetingService) GetManyConcurrent(ctx context.Context, meetingIDs []int64, maxConcurrent int) (bulk.Result[MeetingDetails], error) {
	return bulk.GetConcurrent(ctx, meetingIDs, maxConcurrent, s.getOne)
}

func (s *MeetingService) getOne(ctx context.Context, meetingID int64) (MeetingDetails, error) {
	details, err := s.Details(ctx, meetingID, false)
	if err != nil {
		return MeetingDetails{}, err
	}
	return *details, nil
}
