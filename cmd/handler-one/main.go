// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/xmidt-org/xraydemo/compute"
	"github.com/xmidt-org/xraydemo/internal/lambdaapp"
	"go.uber.org/zap"
)

func main() {
	app, err := lambdaapp.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to initialize: %s\n", err)
		os.Exit(1)
	}

	store, err := app.Store()
	if err != nil {
		app.Logger.Error("unable to create counter store", zap.Error(err))
		os.Exit(1)
	}

	app.Start(compute.NewUnitOne(
		store,
		compute.WithTracer(app.Tracer),
		compute.WithClient(app.Client()),
		compute.WithTargetURL(app.TargetURL),
		compute.WithKey(app.Counter.CounterKeyValue()),
	))
}
