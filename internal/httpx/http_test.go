// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package httpx

import (
	"net/http"
	"testing"
)

type fakeClient struct {
	DoFunc func(*http.Request) (*http.Response, error)
}

func (c *fakeClient) Do(req *http.Request) (*http.Response, error) {
	return c.DoFunc(req)
}

func TestWithUserAgent(t *testing.T) {
	var seen string
	client := &WithUserAgent{
		BasicClient: &fakeClient{DoFunc: func(req *http.Request) (*http.Response, error) {
			seen = req.Header.Get("User-Agent")
			return &http.Response{StatusCode: 200}, nil
		}},
		UserAgent: "simpleindex",
	}
	req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
	if _, err := client.Do(req); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if seen != "simpleindex" {
		t.Errorf("User-Agent = %q, expected %q", seen, "simpleindex")
	}
}

func TestWithAuthToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"token set", "s3cret", "token s3cret"},
		{"empty token leaves header unset", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			client := &WithAuthToken{
				BasicClient: &fakeClient{DoFunc: func(req *http.Request) (*http.Response, error) {
					seen = req.Header.Get("Authorization")
					return &http.Response{StatusCode: 200}, nil
				}},
				Token: tt.token,
			}
			req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
			if _, err := client.Do(req); err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if seen != tt.expected {
				t.Errorf("Authorization = %q, expected %q", seen, tt.expected)
			}
		})
	}
}
