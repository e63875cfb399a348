package bloom

import (
	"context"
	"fmt"
	"net/url"
)

// UserService handles operations related to users.
type UserService struct {
	client *Client
}

// Details retrieves a user's profile. A userID of 0 means the authenticated
// user. Direct reports and positions are fetched only when requested.
func (s *UserService) Details(ctx context.Context, userID int64, includeReports, includePositions bool) (*UserDetails, error) {
	userID, err := s.client.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var w wireUser
	if err := s.client.get(ctx, fmt.Sprintf("users/%d", userID), nil, &w); err != nil {
		return nil, err
	}

	details := &UserDetails{
		ID:       w.ID,
		Name:     w.Name,
		ImageURL: w.ImageURL,
	}

	if includeReports {
		if details.DirectReports, err = s.DirectReports(ctx, userID); err != nil {
			return nil, err
		}
	}
	if includePositions {
		if details.Positions, err = s.Positions(ctx, userID); err != nil {
			return nil, err
		}
	}

	return details, nil
}

// DirectReports lists the users reporting to the given user.
func (s *UserService) DirectReports(ctx context.Context, userID int64) ([]UserSummary, error) {
	userID, err := s.client.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var data []wireUser
	if err := s.client.get(ctx, fmt.Sprintf("users/%d/directreports", userID), nil, &data); err != nil {
		return nil, err
	}

	reports := make([]UserSummary, 0, len(data))
	for _, w := range data {
		reports = append(reports, UserSummary{ID: w.ID, Name: w.Name, ImageURL: w.ImageURL})
	}
	return reports, nil
}

// Positions lists the seats the given user holds.
func (s *UserService) Positions(ctx context.Context, userID int64) ([]Position, error) {
	userID, err := s.client.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var data []wireSeat
	if err := s.client.get(ctx, fmt.Sprintf("users/%d/seats", userID), nil, &data); err != nil {
		return nil, err
	}

	positions := make([]Position, 0, len(data))
	for _, w := range data {
		positions = append(positions, Position{
			ID:   w.Group.Position.ID,
			Name: w.Group.Position.Name,
		})
	}
	return positions, nil
}

// Search finds users matching the search term.
func (s *UserService) Search(ctx context.Context, term string) ([]UserSearchResult, error) {
	params := url.Values{}
	params.Set("term", term)

	var data []wireUser
	if err := s.client.get(ctx, "search/user", params, &data); err != nil {
		return nil, err
	}

	results := make([]UserSearchResult, 0, len(data))
	for _, w := range data {
		results = append(results, UserSearchResult{
			ID:             w.ID,
			Name:           w.Name,
			Description:    w.Description,
			Email:          w.Email,
			OrganizationID: w.OrganizationID,
			ImageURL:       w.ImageURL,
		})
	}
	return results, nil
}

// All lists every user in the organization. Placeholder users are skipped
// unless includePlaceholders is true.
func (s *UserService) All(ctx context.Context, includePlaceholders bool) ([]UserSearchResult, error) {
	params := url.Values{}
	params.Set("term", "%")

	var data []wireUser
	if err := s.client.get(ctx, "search/all", params, &data); err != nil {
		return nil, err
	}

	users := make([]UserSearchResult, 0, len(data))
	for _, w := range data {
		if w.ResultType != "User" {
			continue
		}
		if !includePlaceholders && w.ImageURL == "/i/userplaceholder" {
			continue
		}
		users = append(users, UserSearchResult{
			ID:          w.ID,
			Name:        w.Name,
			Email:       w.Email,
			Description: w.Description,
			ImageURL:    w.ImageURL,
		})
	}
	return users, nil
}
