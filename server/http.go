// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Options configures the local HTTP server
type Options struct {
	// Name identifies the server in logs.  Defaults to DefaultServerName.
	Name string

	// Address is the listen address.  Defaults to DefaultAddress.
	Address string

	// ReadHeaderTimeout defaults to DefaultReadHeaderTimeout
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout defaults to DefaultShutdownTimeout
	ShutdownTimeout time.Duration
}

func (o *Options) name() string {
	if o != nil && len(o.Name) > 0 {
		return o.Name
	}

	return DefaultServerName
}

func (o *Options) address() string {
	if o != nil && len(o.Address) > 0 {
		return o.Address
	}

	return DefaultAddress
}

func (o *Options) readHeaderTimeout() time.Duration {
	if o != nil && o.ReadHeaderTimeout > 0 {
		return o.ReadHeaderTimeout
	}

	return DefaultReadHeaderTimeout
}

// ShutdownTimeoutOrDefault returns how long a graceful shutdown may take
func (o *Options) ShutdownTimeoutOrDefault() time.Duration {
	if o != nil && o.ShutdownTimeout > 0 {
		return o.ShutdownTimeout
	}

	return DefaultShutdownTimeout
}

// NewServer creates the *http.Server for a handler, logging through the given logger
func NewServer(o *Options, handler http.Handler, logger *zap.Logger) *http.Server {
	name := o.name()
	return &http.Server{
		Addr:              o.address(),
		Handler:           handler,
		ReadHeaderTimeout: o.readHeaderTimeout(),
		ConnState:         NewConnectionStateLogger(logger, name),
		ErrorLog:          NewErrorLog(logger, name),
	}
}
