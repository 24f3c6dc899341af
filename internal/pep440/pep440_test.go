// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		input    string
		expected Version
		wantErr  bool
	}{
		{"1.2.3", Version{Release: []int{1, 2, 3}, Post: -1, Dev: -1}, false},
		{"v1.0.0", Version{Release: []int{1, 0, 0}, Post: -1, Dev: -1}, false},                     // Leading 'v'
		{"0.0.12", Version{Release: []int{0, 0, 12}, Post: -1, Dev: -1}, false},
		{"1.0", Version{Release: []int{1, 0}, Post: -1, Dev: -1}, false},                           // Short release
		{"1.0.0a1", Version{Release: []int{1, 0, 0}, Pre: "a", PreN: 1, Post: -1, Dev: -1}, false}, // Alpha
		{"1.0.0b2", Version{Release: []int{1, 0, 0}, Pre: "b", PreN: 2, Post: -1, Dev: -1}, false}, // Beta
		{"1.0.0rc1", Version{Release: []int{1, 0, 0}, Pre: "rc", PreN: 1, Post: -1, Dev: -1}, false},
		{"1.0.0.post1", Version{Release: []int{1, 0, 0}, Post: 1, Dev: -1}, false},
		{"1.0.0.dev5", Version{Release: []int{1, 0, 0}, Post: -1, Dev: 5}, false},
		{"1.0.0alpha1", Version{Release: []int{1, 0, 0}, Pre: "a", PreN: 1, Post: -1, Dev: -1}, false}, // Alias normalization
		{"1.0.0.preview2", Version{Release: []int{1, 0, 0}, Pre: "rc", PreN: 2, Post: -1, Dev: -1}, false},
		{"1.0.0.post1.dev2", Version{Release: []int{1, 0, 0}, Post: 1, Dev: 2}, false},
		{"", Version{}, true},            // Empty string
		{"not-a-version", Version{}, true},
		{"1.2.x", Version{}, true},       // Non-numeric component
		{"1.0.0junk", Version{}, true},   // Trailing garbage
	}

	for _, tt := range tests {
		actual, err := New(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil {
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("New(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		}
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"1.0.0", "1.0.0", 0},             // Equal
		{"1.0", "1.0.0", 0},               // Implicit zero padding
		{"1.0.0", "2.0.0", -1},            // Release difference
		{"0.9.0", "0.10.0", -1},           // Numeric, not lexical, components
		{"0.2.0", "0.10.0", -1},
		{"1.0.0a1", "1.0.0", -1},          // Pre-release vs. final
		{"1.0.0a1", "1.0.0b1", -1},        // Alpha before beta
		{"1.0.0b1", "1.0.0rc1", -1},       // Beta before release candidate
		{"1.0.0rc1", "1.0.0", -1},         // Release candidate before final
		{"1.0.0a1", "1.0.0a2", -1},        // Numbered phases
		{"1.0.0", "1.0.0.post1", -1},      // Final before post
		{"1.0.0.dev5", "1.0.0a1", -1},     // Dev before any pre-release
		{"1.0.0.dev5", "1.0.0", -1},       // Dev before final
		{"1.0.0a1.dev1", "1.0.0a1", -1},   // Dev of a pre-release before the pre-release
		{"1.0.0.post1.dev1", "1.0.0.post1", -1},
		{"bogus", "1.0.0", -1},            // Unparseable sorts below parseable
		{"1.0.0", "bogus", 1},
		{"abc", "abd", -1},                // Unparseable pair compares lexically
	}

	for _, tt := range tests {
		actual := Cmp(tt.a, tt.b)
		if actual != tt.expected {
			t.Errorf("Cmp(%q, %q) = %d, expected %d", tt.a, tt.b, actual, tt.expected)
		}
	}
}

func TestSort(t *testing.T) {
	versions := []string{"0.2.0", "0.10.0", "0.1.0", "1.0.0", "0.9.0"}
	Sort(versions)
	expected := []string{"0.1.0", "0.2.0", "0.9.0", "0.10.0", "1.0.0"}
	if !slices.Equal(versions, expected) {
		t.Errorf("Sort() = %v, expected %v", versions, expected)
	}
}
