// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanner(t *testing.T) {
	var (
		require = require.New(t)
		assert  = assert.New(t)

		expectedStart    = time.Now()
		expectedDuration = 100 * time.Millisecond
		expectedError    = errors.New("expected")

		now = func() time.Time {
			return expectedStart
		}

		since = func(actualStart time.Time) time.Duration {
			assert.Equal(expectedStart, actualStart)
			return expectedDuration
		}

		sp = NewSpanner(Now(now), Since(since), Now(nil), Since(nil))
	)

	require.NotNil(sp)

	finisher := sp.Start("google http call")
	require.NotNil(finisher)

	s := finisher(expectedError)
	require.NotNil(s)
	assert.Equal("google http call", s.Name())
	assert.Equal(expectedStart, s.Start())
	assert.Equal(expectedDuration, s.Duration())
	assert.Equal(expectedError, s.Error())

	// idempotent
	assert.Equal(s, finisher(errors.New("this should not get set")))
	assert.Equal(expectedDuration, s.Duration())
	assert.Equal(expectedError, s.Error())
}
