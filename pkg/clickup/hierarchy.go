package clickup

import (
	"context"
	"net/http"
	"net/url"
)

// ListTeamSpaces returns the raw space list of a team. The space registry is
// not modified.
func (c *Client) ListTeamSpaces(ctx context.Context, teamID string) (Object, error) {
	if teamID == "" {
		return nil, newValidationError("team ID is required")
	}
	return c.do(ctx, call{
		method:  http.MethodGet,
		version: V1,
		path:    "api/v1/team/" + url.PathEscape(teamID) + "/space",
	})
}

// ListCategories returns the raw category list of a space and merges every
// nested subcategory into the subcategory registry.
func (c *Client) ListCategories(ctx context.Context, spaceID string) (Object, error) {
	if spaceID == "" {
		return nil, newValidationError("space ID is required")
	}

	resp, err := c.do(ctx, call{
		method:  http.MethodGet,
		version: V2,
		path:    "v1/project/" + url.PathEscape(spaceID) + "/category",
	})
	if err != nil {
		return nil, err
	}

	c.registerSubcategories(resp, spaceID)
	return resp, nil
}

// registerSubcategories flattens categories[].subcategories[] into the
// registry.
func (c *Client) registerSubcategories(categories Object, spaceID string) {
	for _, category := range categories.Categories() {
		categoryID := category.ID()
		for _, sub := range category.Subcategories() {
			id := sub.ID()
			if id == "" {
				continue
			}
			c.subcategories[id] = Subcategory{
				Name:       sub.String("name"),
				CategoryID: categoryID,
				SpaceID:    spaceID,
			}
		}
	}
}

// ListTags returns the tags of a project (space).
func (c *Client) ListTags(ctx context.Context, projectID string) (Object, error) {
	if projectID == "" {
		return nil, newValidationError("project ID is required")
	}

	query := url.Values{}
	query.Set("project_id", projectID)

	return c.do(ctx, call{
		method:  http.MethodGet,
		version: V2,
		path:    "v1/tag",
		query:   query,
	})
}
