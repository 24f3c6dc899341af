// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package github describes the GitHub release listing interface.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/google/simpleindex/internal/httpx"
	"github.com/google/simpleindex/internal/urlx"
	"github.com/pkg/errors"
)

var apiURL = urlx.MustParse("https://api.github.com")

const (
	perPage = 100
	// maxPages bounds the listing loop against runaway pagination.
	maxPages = 100
)

// Release describes a single repository release with its downloadable assets.
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Registry is a provider of release records for a single repository.
type Registry interface {
	Releases(context.Context, string) ([]Release, error)
	AssetContent(context.Context, string) ([]byte, error)
}

// HTTPRegistry is a Registry implementation that uses the api.github.com HTTP API.
type HTTPRegistry struct {
	Client httpx.BasicClient
}

// Releases lists all releases of the given "owner/repo" repository, following
// pagination until an empty page or the page cap.
func (r HTTPRegistry) Releases(ctx context.Context, repo string) ([]Release, error) {
	pathURL, err := url.Parse(path.Join("/repos", repo, "releases"))
	if err != nil {
		return nil, err
	}
	listURL := apiURL.ResolveReference(pathURL)
	var releases []Release
	for page := 1; page <= maxPages; page++ {
		pageURL := *listURL
		pageURL.RawQuery = url.Values{
			"page":     []string{fmt.Sprint(page)},
			"per_page": []string{fmt.Sprint(perPage)},
		}.Encode()
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
		req.Header.Set("Accept", "application/vnd.github.v3+json")
		resp, err := r.Client.Do(req)
		if err != nil {
			return nil, errors.Wrapf(err, "fetching releases page %d", page)
		}
		if resp.StatusCode != 200 {
			resp.Body.Close()
			return nil, errors.Wrap(errors.New(resp.Status), "fetching releases")
		}
		var pageReleases []Release
		err = json.NewDecoder(resp.Body).Decode(&pageReleases)
		resp.Body.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "decoding releases page %d", page)
		}
		if len(pageReleases) == 0 {
			break
		}
		releases = append(releases, pageReleases...)
	}
	return releases, nil
}

// AssetContent fetches the content of a release asset by its download URL.
func (r HTTPRegistry) AssetContent(ctx context.Context, assetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, errors.Wrap(errors.New(resp.Status), "fetching asset")
	}
	return io.ReadAll(resp.Body)
}

var _ Registry = HTTPRegistry{}
