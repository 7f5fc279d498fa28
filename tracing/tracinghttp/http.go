// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package tracinghttp reports traced subsegments to HTTP clients as response headers.
package tracinghttp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	gokithttp "github.com/go-kit/kit/transport/http"
	"github.com/xmidt-org/xraydemo/tracing"
)

const (
	SpanHeader  = "X-Xraydemo-Span"
	ErrorHeader = "X-Xraydemo-Error"
)

// HeadersForSpans adds one SpanHeader per Span, formatted as "name","start","duration".
// Failed Spans also add an ErrorHeader formatted as "name",status,"message", where status
// is empty unless the error carries one.  An empty timeLayout means time.RFC3339.  Start
// times are written in UTC.
func HeadersForSpans(timeLayout string, h http.Header, spans ...tracing.Span) {
	if len(timeLayout) == 0 {
		timeLayout = time.RFC3339
	}

	output := new(bytes.Buffer)
	for _, s := range spans {
		output.Reset()
		fmt.Fprintf(output, `"%s","%s","%s"`, s.Name(), s.Start().UTC().Format(timeLayout), s.Duration())
		h.Add(SpanHeader, output.String())

		if err := s.Error(); err != nil {
			output.Reset()
			var coder gokithttp.StatusCoder
			if errors.As(err, &coder) {
				fmt.Fprintf(output, `"%s",%d,"%s"`, s.Name(), coder.StatusCode(), err.Error())
			} else {
				fmt.Fprintf(output, `"%s",,"%s"`, s.Name(), err.Error())
			}

			h.Add(ErrorHeader, output.String())
		}
	}
}

// HeadersForSpanned is HeadersForSpans for everything a Spanned reports.  A nil
// Spanned adds nothing.
func HeadersForSpanned(timeLayout string, h http.Header, s tracing.Spanned) {
	if s != nil {
		HeadersForSpans(timeLayout, h, s.Spans()...)
	}
}
