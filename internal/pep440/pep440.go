// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package pep440 implements version ordering per the PEP 440 public version scheme.
package pep440

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a parsed PEP 440 public version.
//
// Epoch and local version segments are not modeled: neither occurs in wheel
// filenames produced by standard build backends.
type Version struct {
	Release []int
	// Pre is the normalized pre-release phase ("a", "b" or "rc"), empty for
	// final releases.
	Pre  string
	PreN int
	// Post and Dev are the post-/dev-release numbers, -1 when absent.
	Post int
	Dev  int
}

// Adapted from the canonical regex in PEP 440's appendix, minus epoch and local.
var versionRE = regexp.MustCompile(`(?i)^v?` +
	`(?P<Release>[0-9]+(?:\.[0-9]+)*)` +
	`(?:[._-]?(?P<PreL>alpha|beta|preview|pre|a|b|c|rc)[._-]?(?P<PreN>[0-9]*))?` +
	`(?:(?:-(?P<PostN1>[0-9]+))|(?:[._-]?(?P<PostL>post|rev|r)[._-]?(?P<PostN2>[0-9]*)))?` +
	`(?:[._-]?(?P<DevL>dev)[._-]?(?P<DevN>[0-9]*))?` +
	`$`)

var preAliases = map[string]string{
	"alpha":   "a",
	"beta":    "b",
	"c":       "rc",
	"pre":     "rc",
	"preview": "rc",
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// New parses a version string, returning an error for strings outside the grammar.
func New(s string) (Version, error) {
	matches := versionRE.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return Version{}, errors.Errorf("invalid version %q", s)
	}
	var v Version
	for _, part := range strings.Split(matches[versionRE.SubexpIndex("Release")], ".") {
		v.Release = append(v.Release, atoiOrZero(part))
	}
	if pre := strings.ToLower(matches[versionRE.SubexpIndex("PreL")]); pre != "" {
		if canonical, ok := preAliases[pre]; ok {
			pre = canonical
		}
		v.Pre = pre
		v.PreN = atoiOrZero(matches[versionRE.SubexpIndex("PreN")])
	}
	v.Post = -1
	if n := matches[versionRE.SubexpIndex("PostN1")]; n != "" {
		v.Post = atoiOrZero(n)
	} else if matches[versionRE.SubexpIndex("PostL")] != "" {
		v.Post = atoiOrZero(matches[versionRE.SubexpIndex("PostN2")])
	}
	v.Dev = -1
	if matches[versionRE.SubexpIndex("DevL")] != "" {
		v.Dev = atoiOrZero(matches[versionRE.SubexpIndex("DevN")])
	}
	return v, nil
}

var prePhaseRank = map[string]int{"a": 0, "b": 1, "rc": 2}

// preKey orders dev-only < pre-release < final at the same release segment,
// mirroring the sort key used by Python's packaging library.
func (v Version) preKey() (rank, n int) {
	switch {
	case v.Pre == "" && v.Post < 0 && v.Dev >= 0:
		return -1, 0 // bare dev release sorts before any pre-release
	case v.Pre == "":
		return len(prePhaseRank) + 1, 0 // final outranks every pre-release
	default:
		return prePhaseRank[v.Pre], v.PreN
	}
}

func releaseCmp(a, b []int) int {
	for i := range max(len(a), len(b)) {
		var an, bn int
		if i < len(a) {
			an = a[i]
		}
		if i < len(b) {
			bn = b[i]
		}
		if an != bn {
			return cmp.Compare(an, bn)
		}
	}
	return 0
}

// Compare returns the PEP 440 ordering of two parsed versions.
func Compare(a, b Version) int {
	if c := releaseCmp(a.Release, b.Release); c != 0 {
		return c
	}
	ar, an := a.preKey()
	br, bn := b.preKey()
	if ar != br {
		return cmp.Compare(ar, br)
	}
	if an != bn {
		return cmp.Compare(an, bn)
	}
	if a.Post != b.Post {
		return cmp.Compare(a.Post, b.Post) // absent (-1) < any post release
	}
	// Dev releases precede their non-dev counterpart.
	switch {
	case a.Dev == b.Dev:
		return 0
	case a.Dev < 0:
		return 1
	case b.Dev < 0:
		return -1
	default:
		return cmp.Compare(a.Dev, b.Dev)
	}
}

// Cmp totally orders raw version strings. Strings that fail to parse sort below
// every parseable version and lexically among themselves.
func Cmp(a, b string) int {
	av, aerr := New(a)
	bv, berr := New(b)
	switch {
	case aerr != nil && berr != nil:
		return strings.Compare(a, b)
	case aerr != nil:
		return -1
	case berr != nil:
		return 1
	}
	return Compare(av, bv)
}

// Sort orders version strings ascending under Cmp, preserving the relative
// order of versions that compare equal.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Cmp)
}
