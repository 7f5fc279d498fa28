// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package lambdaapp assembles the pieces shared by the deployed handler functions:
// configuration from the function environment, X-Ray tracing, and the DynamoDB counter.
package lambdaapp

import (
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/viper"
	"github.com/xmidt-org/xraydemo/compute"
	"github.com/xmidt-org/xraydemo/counter"
	"github.com/xmidt-org/xraydemo/gateway"
	"github.com/xmidt-org/xraydemo/server"
	"github.com/xmidt-org/xraydemo/tracing"
	"github.com/xmidt-org/xraydemo/tracing/xraytracing"
	"github.com/xmidt-org/xraydemo/xhttp"
	"go.uber.org/zap"
)

const targetURLKey = "targetURL"

// App holds what a handler function needs to serve a unit
type App struct {
	Logger    *zap.Logger
	Tracer    *tracing.Tracer
	Counter   *counter.Options
	TargetURL string
}

// New reads the function environment and sets up X-Ray
func New() (*App, error) {
	v := viper.New()
	if err := counter.BindEnv(v); err != nil {
		return nil, err
	}

	if err := v.BindEnv(targetURLKey, compute.TargetURLEnv); err != nil {
		return nil, err
	}

	logger, err := server.NewLogger(v)
	if err != nil {
		return nil, err
	}

	o, err := counter.NewOptions(v)
	if err != nil {
		return nil, err
	}

	backend, err := xraytracing.New()
	if err != nil {
		return nil, err
	}

	return &App{
		Logger:    logger,
		Tracer:    tracing.NewTracer(tracing.WithBackend(backend)),
		Counter:   o,
		TargetURL: v.GetString(targetURLKey),
	}, nil
}

// Client returns an outbound client whose requests are recorded by X-Ray
func (a *App) Client() *http.Client {
	return xhttp.NewClient(&xhttp.ClientOptions{
		Decorators: []func(http.RoundTripper) http.RoundTripper{
			xraytracing.InstrumentTransport,
		},
	})
}

// Store returns the counter, backed by an instrumented DynamoDB client
func (a *App) Store() (*counter.DynamoStore, error) {
	svc, err := counter.NewDynamoDB(a.Counter, xraytracing.InstrumentAWS)
	if err != nil {
		return nil, err
	}

	return counter.NewDynamoStore(svc, a.Counter.TableName()), nil
}

// Handler adapts a unit to API Gateway, giving it a subsegment of its own
func (a *App) Handler(unit compute.Unit) gateway.LambdaHandler {
	return gateway.NewLambdaHandler(
		unit,
		gateway.WithLogger(a.Logger),
		gateway.WithTracer(a.Tracer),
	)
}

// Start hands the unit to the Lambda runtime.  It does not return.
func (a *App) Start(unit compute.Unit) {
	a.Logger.Info("starting", zap.String("component", unit.Name()), zap.String("table", a.Counter.TableName()))
	lambda.Start(a.Handler(unit))
}
