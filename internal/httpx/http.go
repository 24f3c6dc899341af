// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package httpx provides a simpler http.Client abstraction and derivative uses.
package httpx

import (
	"net/http"
)

// BasicClient is a simpler http.Client that only requires a Do method.
type BasicClient interface {
	Do(*http.Request) (*http.Response, error)
}

var _ BasicClient = http.DefaultClient

// WithUserAgent is a basic HTTP client that adds a User-Agent header.
type WithUserAgent struct {
	BasicClient
	UserAgent string
}

var _ BasicClient = &WithUserAgent{}

// Do adds the User-Agent header and sends the request.
func (c *WithUserAgent) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.UserAgent)
	return c.BasicClient.Do(req)
}

// WithAuthToken is a basic HTTP client that adds a token Authorization header.
//
// An empty token leaves the request untouched which allows unauthenticated
// access to public endpoints.
type WithAuthToken struct {
	BasicClient
	Token string
}

var _ BasicClient = &WithAuthToken{}

// Do adds the Authorization header and sends the request.
func (c *WithAuthToken) Do(req *http.Request) (*http.Response, error) {
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}
	return c.BasicClient.Do(req)
}
