// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import "github.com/prometheus/client_golang/prometheus"

const (
	DefaultNamespace = "xraydemo"
	DefaultSubsystem = "demo"
)

// Options configures a Registry
type Options struct {
	// Namespace applies to every metric.  If not supplied, DefaultNamespace is used.
	Namespace string

	// Subsystem applies to every metric.  If not supplied, DefaultSubsystem is used.
	Subsystem string

	// DisableGoCollector turns off the Go runtime collector
	DisableGoCollector bool

	// DisableProcessCollector turns off the process collector
	DisableProcessCollector bool
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) registry() *prometheus.Registry {
	pr := prometheus.NewRegistry()

	if o == nil || !o.DisableGoCollector {
		pr.MustRegister(prometheus.NewGoCollector())
	}

	if o == nil || !o.DisableProcessCollector {
		pr.MustRegister(prometheus.NewProcessCollector(
			prometheus.ProcessCollectorOpts{
				Namespace: o.namespace(),
			},
		))
	}

	return pr
}
