// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tracing

import "bytes"

// SpanError is a slice of Spans that implements error.  Only Spans that failed
// contribute to the message.
type SpanError []Span

func (se SpanError) String() string {
	return se.Error()
}

func (se SpanError) Error() string {
	var output bytes.Buffer
	for _, s := range se {
		if err := s.Error(); err != nil {
			if output.Len() > 0 {
				output.WriteRune(',')
			}

			output.WriteRune('"')
			output.WriteString(s.Name())
			output.WriteString(": ")
			output.WriteString(err.Error())
			output.WriteRune('"')
		}
	}

	return output.String()
}
