package bloom

import (
	"context"
	"fmt"
	"net/url"
)

// HeadlineService handles operations related to headlines.
type HeadlineService struct {
	client *Client
}

// Create creates a new headline. An ownerID of 0 means the authenticated
// user; notes may be empty.
func (s *HeadlineService) Create(ctx context.Context, meetingID int64, title string, ownerID int64, notes string) (*HeadlineInfo, error) {
	ownerID, err := s.client.resolveUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"title":   title,
		"ownerId": ownerID,
	}
	if notes != "" {
		payload["notes"] = notes
	}

	var w wireHeadline
	if err := s.client.post(ctx, fmt.Sprintf("L10/%d/headlines", meetingID), payload, &w); err != nil {
		return nil, err
	}

	return &HeadlineInfo{
		ID:           w.ID,
		Title:        w.Name,
		OwnerDetails: OwnerDetails{ID: ownerID},
		NotesURL:     w.DetailsURL,
	}, nil
}

// Update changes a headline's title.
func (s *HeadlineService) Update(ctx context.Context, headlineID int64, title string) error {
	payload := map[string]any{"title": title}
	return s.client.put(ctx, fmt.Sprintf("headline/%d", headlineID), payload)
}

// Details retrieves a single headline by ID.
func (s *HeadlineService) Details(ctx context.Context, headlineID int64) (*HeadlineDetails, error) {
	params := url.Values{}
	params.Set("Include_Origin", "true")

	var w wireHeadline
	if err := s.client.get(ctx, fmt.Sprintf("headline/%d", headlineID), params, &w); err != nil {
		return nil, err
	}
	details := headlineDetailsFromWire(w)
	return &details, nil
}

// List returns headlines for a user or for a meeting; the two filters are
// mutually exclusive. With neither set, the authenticated user's headlines
// are returned.
func (s *HeadlineService) List(ctx context.Context, userID, meetingID int64) ([]HeadlineDetails, error) {
	if userID != 0 && meetingID != 0 {
		return nil, fmt.Errorf("provide either a user ID or a meeting ID, not both")
	}

	var endpoint string
	if meetingID != 0 {
		endpoint = fmt.Sprintf("l10/%d/headlines", meetingID)
	} else {
		resolved, err := s.client.resolveUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		endpoint = fmt.Sprintf("headline/users/%d", resolved)
	}

	var data []wireHeadline
	if err := s.client.get(ctx, endpoint, nil, &data); err != nil {
		return nil, err
	}
	return headlineListFromWire(data), nil
}

// Delete removes a headline.
func (s *HeadlineService) Delete(ctx context.Context, headlineID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("headline/%d", headlineID))
}
