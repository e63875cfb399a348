package bloom

import (
	"context"
	"fmt"
)

// ScorecardService handles operations related to scorecards.
type ScorecardService struct {
	client *Client
}

// ScorecardListOptions filter a scorecard listing. UserID and MeetingID are
// mutually exclusive; with neither set, the authenticated user's scorecard
// is returned. WeekOffset, when non-nil, keeps only scores of the current
// week shifted by that many weeks. Empty scores are dropped unless ShowEmpty
// is set.
type ScorecardListOptions struct {
	UserID     int64
	MeetingID  int64
	ShowEmpty  bool
	WeekOffset *int64
}

// CurrentWeek retrieves the current scorecard week.
func (s *ScorecardService) CurrentWeek(ctx context.Context) (*ScorecardWeek, error) {
	var w wireWeek
	if err := s.client.get(ctx, "weeks/current", nil, &w); err != nil {
		return nil, err
	}

	return &ScorecardWeek{
		ID:         w.ID,
		WeekNumber: w.ForWeekNumber,
		WeekStart:  w.LocalDate.Date,
		WeekEnd:    w.ForWeek,
	}, nil
}

// List retrieves scorecard entries for a user or a meeting.
func (s *ScorecardService) List(ctx context.Context, opts ScorecardListOptions) ([]ScorecardItem, error) {
	if opts.UserID != 0 && opts.MeetingID != 0 {
		return nil, fmt.Errorf("provide either a user ID or a meeting ID, not both")
	}

	var endpoint string
	if opts.MeetingID != 0 {
		endpoint = fmt.Sprintf("scorecard/meeting/%d", opts.MeetingID)
	} else {
		userID, err := s.client.resolveUserID(ctx, opts.UserID)
		if err != nil {
			return nil, err
		}
		endpoint = fmt.Sprintf("scorecard/user/%d", userID)
	}

	var data wireScorecard
	if err := s.client.get(ctx, endpoint, nil, &data); err != nil {
		return nil, err
	}

	items := scorecardItemsFromWire(data.Scores)

	if opts.WeekOffset != nil {
		week, err := s.CurrentWeek(ctx)
		if err != nil {
			return nil, err
		}
		targetWeekID := week.WeekNumber + *opts.WeekOffset

		filtered := items[:0]
		for _, item := range items {
			if item.WeekID == targetWeekID {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if !opts.ShowEmpty {
		filtered := items[:0]
		for _, item := range items {
			if item.Value != nil {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return items, nil
}

// Get retrieves a single scorecard entry by measurable ID, or nil when the
// measurable has no entry for the requested week.
func (s *ScorecardService) Get(ctx context.Context, measurableID, userID, weekOffset int64) (*ScorecardItem, error) {
	items, err := s.List(ctx, ScorecardListOptions{
		UserID:     userID,
		ShowEmpty:  true,
		WeekOffset: &weekOffset,
	})
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.MeasurableID == measurableID {
			return &item, nil
		}
	}
	return nil, nil
}

// Score records a value for a measurable in the current week shifted by
// weekOffset.
func (s *ScorecardService) Score(ctx context.Context, measurableID int64, score float64, weekOffset int64) error {
	week, err := s.CurrentWeek(ctx)
	if err != nil {
		return err
	}
	weekID := week.WeekNumber + weekOffset

	payload := map[string]any{"value": score}
	return s.client.put(ctx, fmt.Sprintf("measurables/%d/week/%d", measurableID, weekID), payload)
}
