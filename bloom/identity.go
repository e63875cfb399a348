package bloom

import (
	"context"
	"fmt"
)

// UserID returns the authenticated user's ID, used as the default actor for
// operations that take an optional user. The first call resolves it with a
// single lookup against the API and caches the result for the client's
// lifetime; later calls return the cached value without any network traffic.
// If the lookup fails the identity stays unset, so the next call retries.
func (c *Client) UserID(ctx context.Context) (int64, error) {
	c.userMu.Lock()
	defer c.userMu.Unlock()

	if c.userIDSet {
		return c.userID, nil
	}

	var me wireUser
	if err := c.get(ctx, "users/mine", nil, &me); err != nil {
		return 0, fmt.Errorf("failed to resolve current user: %w", err)
	}

	c.userID = me.ID
	c.userIDSet = true
	c.logger.Debug().Int64("user_id", c.userID).Msg("resolved current user")
	return c.userID, nil
}

// SetUserID sets the authenticated user's ID explicitly, bypassing the lazy
// lookup.
func (c *Client) SetUserID(id int64) {
	c.userMu.Lock()
	defer c.userMu.Unlock()
	c.userID = id
	c.userIDSet = true
}

// resolveUserID returns userID when set (non-zero), falling back to the
// authenticated user.
func (c *Client) resolveUserID(ctx context.Context, userID int64) (int64, error) {
	if userID != 0 {
		return userID, nil
	}
	return c.UserID(ctx)
}
