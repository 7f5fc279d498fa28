// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// GetAndDiscard issues a GET for the given URL and throws away the response body.  A
// response status outside of 2xx is returned as an *Error carrying that status.
func GetAndDiscard(ctx context.Context, c Client, url string) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := c.Do(request)
	if err != nil {
		return err
	}

	defer response.Body.Close()
	if _, err := io.Copy(io.Discard, response.Body); err != nil {
		return err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &Error{
			Code: response.StatusCode,
			Text: fmt.Sprintf("GET %s returned %d", url, response.StatusCode),
		}
	}

	return nil
}
