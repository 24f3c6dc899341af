// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package index builds static PEP 503 "simple repository" indexes from release
// artifacts.
package index

import (
	"slices"

	"github.com/google/simpleindex/internal/pep440"
)

// An Artifact is a single wheel file discovered in a release.
type Artifact struct {
	// Name is the PEP 503 normalized distribution name.
	Name string
	// Version is the raw version string from the wheel filename.
	Version     string
	Filename    string
	DownloadURL string
	// SHA256 is the artifact checksum, empty when unavailable.
	SHA256 string
}

// PackageIndex maps normalized package names to their artifacts ordered by
// descending version precedence.
type PackageIndex map[string][]Artifact

// Group buckets artifacts by normalized name and sorts each bucket newest
// first. Artifacts with equal version precedence keep their input order.
func Group(artifacts []Artifact) PackageIndex {
	idx := make(PackageIndex)
	for _, a := range artifacts {
		idx[a.Name] = append(idx[a.Name], a)
	}
	for _, as := range idx {
		slices.SortStableFunc(as, func(a, b Artifact) int {
			return pep440.Cmp(b.Version, a.Version)
		})
	}
	return idx
}

// Packages returns the index's package names in alphabetical order.
func (idx PackageIndex) Packages() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
