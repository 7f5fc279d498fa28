// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"net/http"

	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id of each request handled by the local router
const RequestIDHeader = "X-Request-Id"

// RequestLogging is middleware that assigns a request id, unless the client supplied
// one, echoes it in the response, and puts a logger carrying it into the request context.
func RequestLogging(base *zap.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = sallust.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(RequestIDHeader)
			if len(requestID) == 0 {
				requestID = ksuid.New().String()
			}

			response.Header().Set(RequestIDHeader, requestID)
			logger := base.With(
				zap.String("requestId", requestID),
				zap.String("method", request.Method),
				zap.String("path", request.URL.Path),
			)

			logger.Debug("request received")
			next.ServeHTTP(response, request.WithContext(sallust.With(request.Context(), logger)))
		})
	}
}
