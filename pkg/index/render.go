// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"fmt"
	"strings"
)

const rootTitle = "Simple index"

// RenderRootIndex renders the root index page: one link per package name,
// alphabetically ordered. Deterministic and valid for the empty index.
func RenderRootIndex(idx PackageIndex) string {
	parts := []string{
		"<!DOCTYPE html>",
		"<html>",
		"<head>",
		`  <meta charset="utf-8">`,
		fmt.Sprintf("  <title>%s</title>", rootTitle),
		"</head>",
		"<body>",
		fmt.Sprintf("  <h1>%s</h1>", rootTitle),
	}
	for _, name := range idx.Packages() {
		parts = append(parts, fmt.Sprintf(`  <a href="%s/">%s</a><br>`, name, name))
	}
	parts = append(parts, "</body>", "</html>")
	return strings.Join(parts, "\n")
}

// RenderPackageIndex renders the index page for a single package. Artifacts are
// emitted in the given order (already newest first); hrefs carry a
// "#sha256=<sum>" fragment when a checksum is known.
func RenderPackageIndex(name string, artifacts []Artifact) string {
	parts := []string{
		"<!DOCTYPE html>",
		"<html>",
		"<head>",
		`  <meta charset="utf-8">`,
		fmt.Sprintf("  <title>Links for %s</title>", name),
		"</head>",
		"<body>",
		fmt.Sprintf("  <h1>Links for %s</h1>", name),
	}
	for _, a := range artifacts {
		href := a.DownloadURL
		if a.SHA256 != "" {
			href += "#sha256=" + a.SHA256
		}
		parts = append(parts, fmt.Sprintf(`  <a href="%s">%s</a><br>`, href, a.Filename))
	}
	parts = append(parts, "</body>", "</html>")
	return strings.Join(parts, "\n")
}
