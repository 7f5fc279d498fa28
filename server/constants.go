// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import "time"

const (
	// DefaultServerName is used when no server name is configured.  It is also the
	// configuration file name and environment prefix of the local server.
	DefaultServerName = "xraydemo"

	// DefaultAddress is the listen address of the local server
	DefaultAddress = ":8080"

	// DefaultReadHeaderTimeout bounds how long the server waits for request headers
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultShutdownTimeout bounds a graceful shutdown
	DefaultShutdownTimeout = 15 * time.Second

	// FileFlag names the flag that points at an explicit configuration file
	FileFlag = "file"

	// LogKey is the viper subkey holding the sallust logging configuration
	LogKey = "log"

	// ServerKey is the viper subkey holding the HTTP server Options
	ServerKey = "server"
)
