// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/xmidt-org/xraydemo/compute"
	"github.com/xmidt-org/xraydemo/internal/lambdaapp"
)

func main() {
	app, err := lambdaapp.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to initialize: %s\n", err)
		os.Exit(1)
	}

	app.Start(compute.NewUnitTwo(compute.WithTracer(app.Tracer)))
}
