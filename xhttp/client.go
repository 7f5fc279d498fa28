// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package xhttp holds the outbound HTTP plumbing and HTTP error carrier shared by the units and the gateway.
package xhttp

import (
	"net/http"
	"time"
)

// Client is an interface implemented by net/http.Client
type Client interface {
	Do(*http.Request) (*http.Response, error)
}

var _ Client = (*http.Client)(nil)

// DefaultClientTimeout is the overall timeout of clients built by NewClient when none is configured
const DefaultClientTimeout = 10 * time.Second

// ClientOptions describes an outbound HTTP client
type ClientOptions struct {
	// Timeout bounds an entire transaction, including reading the body.  If unset,
	// DefaultClientTimeout is used.
	Timeout time.Duration

	// Transport is the base round tripper.  If unset, http.DefaultTransport is used.
	Transport http.RoundTripper

	// Decorators wrap the transport, in order, so that the last one is outermost.
	// Tracing instrumentation is installed this way.
	Decorators []func(http.RoundTripper) http.RoundTripper

	// Redirects is the redirect policy.  If unset, the RedirectPolicy defaults apply.
	Redirects *RedirectPolicy
}

// NewClient builds an *http.Client from a set of options.  A nil options uses the defaults.
func NewClient(o *ClientOptions) *http.Client {
	var (
		timeout   = DefaultClientTimeout
		transport = http.DefaultTransport
		redirects *RedirectPolicy
	)

	if o != nil {
		if o.Timeout > 0 {
			timeout = o.Timeout
		}

		redirects = o.Redirects
		if o.Transport != nil {
			transport = o.Transport
		}

		for _, d := range o.Decorators {
			if d != nil {
				transport = d(transport)
			}
		}
	}

	return &http.Client{
		Timeout:       timeout,
		Transport:     transport,
		CheckRedirect: CheckRedirect(redirects),
	}
}
