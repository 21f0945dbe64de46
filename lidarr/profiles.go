package lidarr

import (
	"context"
	"fmt"
	"net/http"
)

// GetQualityProfiles retrieves all quality profiles.
func (c *Client) GetQualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	spec := RequestSpec{Method: http.MethodGet, Path: "qualityprofile"}
	if err := c.do(ctx, spec, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetQualityProfile retrieves a quality profile by ID.
func (c *Client) GetQualityProfile(ctx context.Context, profileID int64) (*QualityProfile, error) {
	var profile QualityProfile
	spec := RequestSpec{Method: http.MethodGet, Path: fmt.Sprintf("qualityprofile/%d", profileID)}
	if err := c.do(ctx, spec, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetMetadataProfiles retrieves all metadata profiles.
func (c *Client) GetMetadataProfiles(ctx context.Context) ([]MetadataProfile, error) {
	var profiles []MetadataProfile
	spec := RequestSpec{Method: http.MethodGet, Path: "metadataprofile"}
	if err := c.do(ctx, spec, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetMetadataProfile retrieves a metadata profile by ID.
func (c *Client) GetMetadataProfile(ctx context.Context, profileID int64) (*MetadataProfile, error) {
	var profile MetadataProfile
	spec := RequestSpec{Method: http.MethodGet, Path: fmt.Sprintf("metadataprofile/%d", profileID)}
	if err := c.do(ctx, spec, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetImportLists retrieves all configured import lists.
func (c *Client) GetImportLists(ctx context.Context) ([]ImportList, error) {
	var lists []ImportList
	spec := RequestSpec{Method: http.MethodGet, Path: "importlist"}
	if err := c.do(ctx, spec, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// TestImportList asks the server to test an import list configuration.
func (c *Client) TestImportList(ctx context.Context, importListID int64) error {
	spec := RequestSpec{Method: http.MethodPost, Path: fmt.Sprintf("importlist/test/%d", importListID)}
	return c.do(ctx, spec, nil)
}

// GetRootFolders retrieves all configured root folders.
func (c *Client) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	spec := RequestSpec{Method: http.MethodGet, Path: "rootfolder"}
	if err := c.do(ctx, spec, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// AddRootFolder adds a new root folder.
func (c *Client) AddRootFolder(ctx context.Context, path string) (*RootFolder, error) {
	var folder RootFolder
	spec := RequestSpec{Method: http.MethodPost, Path: "rootfolder", Body: RootFolder{Path: path}}
	if err := c.do(ctx, spec, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteRootFolder removes a root folder by ID.
func (c *Client) DeleteRootFolder(ctx context.Context, folderID int64) error {
	spec := RequestSpec{Method: http.MethodDelete, Path: fmt.Sprintf("rootfolder/%d", folderID)}
	return c.do(ctx, spec, nil)
}
