package lidarr

import (
	"context"
	"fmt"
	"net/http"
)

// GetTags retrieves all tags.
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	spec := RequestSpec{Method: http.MethodGet, Path: "tag"}
	if err := c.do(ctx, spec, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// AddTag creates a new tag.
func (c *Client) AddTag(ctx context.Context, label string) (*Tag, error) {
	var tag Tag
	spec := RequestSpec{Method: http.MethodPost, Path: "tag", Body: Tag{Label: label}}
	if err := c.do(ctx, spec, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag by ID.
func (c *Client) DeleteTag(ctx context.Context, tagID int) error {
	spec := RequestSpec{Method: http.MethodDelete, Path: fmt.Sprintf("tag/%d", tagID)}
	return c.do(ctx, spec, nil)
}

// GetTagDetails retrieves which items carry a tag.
func (c *Client) GetTagDetails(ctx context.Context, tagID int) (*TagDetails, error) {
	var details TagDetails
	spec := RequestSpec{Method: http.MethodGet, Path: fmt.Sprintf("tag/detail/%d", tagID)}
	if err := c.do(ctx, spec, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// GetTagByName finds a tag by its label
func (c *Client) GetTagByName(ctx context.Context, label string) (*Tag, error) {
	tags, err := c.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		if tag.Label == label {
			return &tag, nil
		}
	}

	return nil, fmt.Errorf("tag not found: %s", label)
}
