// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"fmt"
	"net/http"
)

// Error is an HTTP-specific carrier of error information.  It implements go-kit's StatusCoder
// and Headerer, and json.Marshaler so that go-kit's default error encoder emits a JSON message.
type Error struct {
	Code   int
	Header http.Header
	Text   string
}

func (e *Error) StatusCode() int {
	return e.Code
}

func (e *Error) Headers() http.Header {
	return e.Header
}

func (e *Error) Error() string {
	return e.Text
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"code": %d, "message": %q}`, e.Code, e.Text)), nil
}
