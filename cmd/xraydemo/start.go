// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xmidt-org/xraydemo/server"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// startServer binds the listener when the application starts, so that an unusable
// address fails startup, and shuts the server down gracefully on stop.
func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, o *server.Options, router *mux.Router, logger *zap.Logger) {
	s := server.NewServer(o, router, logger)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			l, err := net.Listen("tcp", s.Addr)
			if err != nil {
				return err
			}

			logger.Info("starting server", zap.Stringer("address", l.Addr()))
			go func() {
				if err := s.Serve(l); !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server exited", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, o.ShutdownTimeoutOrDefault())
			defer cancel()

			logger.Info("stopping server")
			return s.Shutdown(ctx)
		},
	})
}
