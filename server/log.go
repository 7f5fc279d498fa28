// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"log"
	"net"
	"net/http"

	"github.com/spf13/viper"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// NewLogger builds a zap logger from the sallust configuration under LogKey.  Without
// any configuration, a production JSON logger at info level writing to stdout is built.
func NewLogger(v *viper.Viper) (*zap.Logger, error) {
	c := sallust.Config{
		Level:            "info",
		Encoding:         "json",
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	if v != nil && v.IsSet(LogKey) {
		if err := Unmarshal(v, LogKey, &c); err != nil {
			return nil, err
		}
	}

	return c.Build()
}

// NewErrorLog creates a log.Logger appropriate for http.Server.ErrorLog
func NewErrorLog(logger *zap.Logger, serverName string) *log.Logger {
	l, err := zap.NewStdLogAt(logger.With(zap.String("server", serverName)), zap.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(logger)
	}

	return l
}

// NewConnectionStateLogger produces a function appropriate for http.Server.ConnState.
// The returned function logs each state change at debug.
func NewConnectionStateLogger(logger *zap.Logger, serverName string) func(net.Conn, http.ConnState) {
	return func(connection net.Conn, connectionState http.ConnState) {
		logger.Debug(
			"connection state change",
			zap.String("server", serverName),
			zap.String("localAddress", connection.LocalAddr().String()),
			zap.Stringer("state", connectionState),
		)
	}
}
