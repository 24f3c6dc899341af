// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/simpleindex/pkg/registry/github"
)

const (
	downloadURLTemplate = "https://github.com/%s/releases/download/%s/%s"
	checksumSuffix      = ".sha256"
	checksumTimeout     = 10 * time.Second
)

// ExtractArtifacts walks every release asset and builds an Artifact for each
// parseable wheel file. Unparseable wheel filenames are logged and skipped; the
// remaining population is still extracted.
//
// Download URLs are synthesized from the release tag and asset filename rather
// than taken from the asset record, keeping the link shape stable.
func ExtractArtifacts(ctx context.Context, registry github.Registry, repo string, releases []github.Release) []Artifact {
	var artifacts []Artifact
	for _, release := range releases {
		for _, asset := range release.Assets {
			if !strings.HasSuffix(asset.Name, wheelSuffix) {
				continue
			}
			name, version, ok := ParseWheelFilename(asset.Name)
			if !ok {
				log.Printf("Warning: Could not parse wheel filename: %s", asset.Name)
				continue
			}
			artifacts = append(artifacts, Artifact{
				Name:        name,
				Version:     version,
				Filename:    asset.Name,
				DownloadURL: fmt.Sprintf(downloadURLTemplate, repo, release.TagName, asset.Name),
				SHA256:      fetchChecksum(ctx, registry, release.Assets, asset.Name),
			})
		}
	}
	return artifacts
}

// fetchChecksum resolves the checksum for a wheel from its sibling
// "<filename>.sha256" asset, if any. Best-effort: any fetch failure yields an
// empty checksum and never aborts extraction.
func fetchChecksum(ctx context.Context, registry github.Registry, assets []github.Asset, filename string) string {
	for _, asset := range assets {
		if asset.Name != filename+checksumSuffix {
			continue
		}
		if asset.BrowserDownloadURL == "" {
			break
		}
		ctx, cancel := context.WithTimeout(ctx, checksumTimeout)
		defer cancel()
		content, err := registry.AssetContent(ctx, asset.BrowserDownloadURL)
		if err != nil {
			break
		}
		if fields := strings.Fields(string(content)); len(fields) > 0 {
			return fields[0]
		}
		break
	}
	return ""
}
