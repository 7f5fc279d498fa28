// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package compute

import (
	"net/http"
	"time"

	"github.com/xmidt-org/xraydemo/counter"
	"github.com/xmidt-org/xraydemo/tracing"
	"github.com/xmidt-org/xraydemo/xhttp"
)

// Option configures a unit
type Option func(*config)

type config struct {
	tracer    *tracing.Tracer
	client    xhttp.Client
	targetURL string
	key       string
	delay     time.Duration
	sleep     func(time.Duration)
	measures  Measures
}

func newConfig(o []Option) config {
	c := config{
		tracer:    tracing.NewTracer(),
		client:    http.DefaultClient,
		targetURL: DefaultTargetURL,
		key:       counter.DefaultKey,
		delay:     DefaultDelay,
		sleep:     time.Sleep,
		measures:  DiscardMeasures(),
	}

	for _, option := range o {
		option(&c)
	}

	return c
}

// WithTracer sets the Tracer.  A nil Tracer is ignored.
func WithTracer(t *tracing.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithClient sets the client used for the outbound call.  A nil client is ignored.
func WithClient(client xhttp.Client) Option {
	return func(c *config) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTargetURL sets the URL of the outbound call.  An empty URL is ignored.
func WithTargetURL(u string) Option {
	return func(c *config) {
		if len(u) > 0 {
			c.targetURL = u
		}
	}
}

// WithKey sets the key of the counter to increment.  An empty key is ignored.
func WithKey(k string) Option {
	return func(c *config) {
		if len(k) > 0 {
			c.key = k
		}
	}
}

// WithDelay sets how long the delay subsegment waits.  Negative values are ignored.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithSleep replaces time.Sleep, which is useful for tests.  A nil function is ignored.
func WithSleep(f func(time.Duration)) Option {
	return func(c *config) {
		if f != nil {
			c.sleep = f
		}
	}
}

// WithMeasures sets the metrics the unit reports to
func WithMeasures(m Measures) Option {
	return func(c *config) {
		c.measures = m
	}
}
