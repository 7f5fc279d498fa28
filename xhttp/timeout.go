// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"context"
	"net/http"
	"time"
)

// Timeout returns an Alice-style constructor that gives each request context a deadline,
// so that outbound calls and waits made while serving it are cut short.  A nonpositive
// timeout leaves the handler undecorated.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			ctx, cancel := context.WithTimeout(request.Context(), timeout)
			defer cancel()

			next.ServeHTTP(response, request.WithContext(ctx))
		})
	}
}
