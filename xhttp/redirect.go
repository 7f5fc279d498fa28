// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"fmt"
	"net/http"
	"net/textproto"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// DefaultMaxRedirects is the number of redirects followed when a RedirectPolicy doesn't say
const DefaultMaxRedirects = 10

// RedirectPolicy controls how an outbound client follows redirects, e.g. from a bare
// domain to its www host.
type RedirectPolicy struct {
	// MaxRedirects is the maximum number of redirects to follow.  If unset, DefaultMaxRedirects is used.
	MaxRedirects int

	// ExcludeHeaders are not copied from the previous request onto the redirected one
	ExcludeHeaders []string
}

func (p *RedirectPolicy) maxRedirects() int {
	if p != nil && p.MaxRedirects > 0 {
		return p.MaxRedirects
	}

	return DefaultMaxRedirects
}

func (p *RedirectPolicy) excludes() map[string]bool {
	excludes := make(map[string]bool)
	if p != nil {
		for _, v := range p.ExcludeHeaders {
			excludes[textproto.CanonicalMIMEHeaderKey(v)] = true
		}
	}

	return excludes
}

// CheckRedirect produces an http.Client.CheckRedirect function for a policy.  Each
// decision is logged to the logger carried by the request context.
func CheckRedirect(p *RedirectPolicy) func(*http.Request, []*http.Request) error {
	var (
		maxRedirects = p.maxRedirects()
		excludes     = p.excludes()
	)

	return func(r *http.Request, via []*http.Request) error {
		logger := sallust.Get(r.Context())
		if len(via) >= maxRedirects {
			err := fmt.Errorf("stopped after %d redirect(s)", maxRedirects)
			logger.Error("redirect refused", zap.Stringer("url", r.URL), zap.Error(err))
			return err
		}

		for k, v := range via[len(via)-1].Header {
			if excludes[k] {
				logger.Debug("excluding header on redirect", zap.String("header", k))
				continue
			}

			r.Header[k] = v
		}

		logger.Debug("following redirect", zap.Stringer("url", r.URL), zap.Int("redirects", len(via)))
		return nil
	}
}
