// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const applicationName = "xraydemo"

// arguments are the command line arguments, without the program name
type arguments []string

func options(args []string) fx.Option {
	return fx.Options(
		fx.Supply(arguments(args)),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Provide(
			provideViper,
			provideLogger,
			provideServerOptions,
			provideTracerProvider,
			provideTracer,
			provideCounter,
			provideRegistry,
			provideMeasures,
			provideClient,
			provideRoutes,
			provideRouter,
		),
		fx.Invoke(startServer),
	)
}

func main() {
	app := fx.New(options(os.Args[1:]))
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to start %s: %s\n", applicationName, err)
		os.Exit(1)
	}

	app.Run()
}
