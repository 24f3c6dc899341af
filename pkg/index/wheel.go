// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"regexp"
	"strings"
)

const wheelSuffix = ".whl"

var separatorRunRE = regexp.MustCompile(`[-_.]+`)

// NormalizeName normalizes a distribution name according to PEP 503: runs of
// hyphens, underscores and periods collapse to a single hyphen and letters are
// lowercased. Idempotent.
func NormalizeName(name string) string {
	return strings.ToLower(separatorRunRE.ReplaceAllString(name, "-"))
}

// ParseWheelFilename extracts the normalized distribution name and the verbatim
// version string from a wheel filename of the form
// {distribution}-{version}(-{build tag})?-{python tag}-{abi tag}-{platform tag}.whl.
//
// ok is false for filenames outside that grammar; that is an expected outcome,
// not an error. The version segment is passed through untouched: a version is
// assumed to never contain a literal hyphen.
func ParseWheelFilename(filename string) (name, version string, ok bool) {
	base, found := strings.CutSuffix(filename, wheelSuffix)
	if !found {
		return "", "", false
	}
	parts := strings.Split(base, "-")
	if len(parts) < 5 {
		return "", "", false
	}
	return NormalizeName(parts[0]), parts[1], true
}
