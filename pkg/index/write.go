// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"log"
	"path"
	"slices"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
)

const indexFile = "index.html"

// WriteIndex persists the rendered index to fs: index.html at the root plus
// one <name>/index.html per package. Rendering happens before the first write
// so a failed run never leaves partial output behind an earlier error.
func WriteIndex(fs billy.Filesystem, idx PackageIndex) error {
	pages := map[string]string{indexFile: RenderRootIndex(idx)}
	for name, artifacts := range idx {
		pages[path.Join(name, indexFile)] = RenderPackageIndex(name, artifacts)
	}
	paths := make([]string, 0, len(pages))
	for p := range pages {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		if dir := path.Dir(p); dir != "." {
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, "creating directory %s", dir)
			}
		}
		if err := util.WriteFile(fs, p, []byte(pages[p]), 0644); err != nil {
			return errors.Wrapf(err, "writing %s", p)
		}
		log.Printf("Generated: %s", p)
	}
	return nil
}
