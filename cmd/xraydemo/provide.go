// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/candlelight"
	"github.com/xmidt-org/xraydemo/compute"
	"github.com/xmidt-org/xraydemo/counter"
	"github.com/xmidt-org/xraydemo/gateway"
	"github.com/xmidt-org/xraydemo/server"
	"github.com/xmidt-org/xraydemo/tracing"
	"github.com/xmidt-org/xraydemo/tracing/oteltracing"
	"github.com/xmidt-org/xraydemo/xhttp"
	"github.com/xmidt-org/xraydemo/xmetrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// TracingKey holds the candlelight configuration
	TracingKey = "tracing"

	// MetricsKey holds the xmetrics.Options
	MetricsKey = "metrics"

	// ClientKey holds the xhttp.ClientOptions of the outbound call
	ClientKey = "client"

	TargetURLKey = "targetURL"
	DelayKey     = "delay"

	metricsPath = "/metrics"
)

func provideViper(args arguments) (*viper.Viper, error) {
	var (
		v = server.NewViper(applicationName)
		f = pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	)

	server.ConfigureFlagSet(applicationName, f)
	if err := server.ParseAndBind(v, f, args); err != nil {
		return nil, err
	}

	if err := server.ReadInConfig(v, f); err != nil {
		return nil, err
	}

	return v, nil
}

func provideLogger(v *viper.Viper) (*zap.Logger, error) {
	return server.NewLogger(v)
}

func provideServerOptions(v *viper.Viper) (*server.Options, error) {
	o := new(server.Options)
	if err := server.Unmarshal(v, server.ServerKey, o); err != nil {
		return nil, err
	}

	return o, nil
}

// provideTracerProvider builds the OpenTelemetry provider from candlelight configuration.
// Without any, spans are not exported.
func provideTracerProvider(lc fx.Lifecycle, v *viper.Viper, logger *zap.Logger) (trace.TracerProvider, error) {
	if !v.IsSet(TracingKey) {
		return trace.NewNoopTracerProvider(), nil
	}

	config := candlelight.Config{ApplicationName: applicationName}
	if err := server.Unmarshal(v, TracingKey, &config); err != nil {
		return nil, err
	}

	tp, err := oteltracing.NewTracerProvider(config)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tp)
	if s, ok := tp.(interface{ Shutdown(context.Context) error }); ok {
		lc.Append(fx.Hook{
			OnStop: s.Shutdown,
		})
	}

	logger.Info("tracing configured", zap.String("provider", config.Provider))
	return tp, nil
}

func provideTracer(tp trace.TracerProvider) *tracing.Tracer {
	return tracing.NewTracer(
		tracing.WithBackend(oteltracing.New(tp)),
	)
}

// CounterOut is the counter store and the options it was built from
type CounterOut struct {
	fx.Out

	Store   counter.Store
	Options *counter.Options
}

func provideCounter(lc fx.Lifecycle, v *viper.Viper, logger *zap.Logger) (CounterOut, error) {
	o, err := counter.NewOptions(v.Sub(counter.CounterKey))
	if err != nil {
		return CounterOut{}, err
	}

	if o.InMemory {
		logger.Info("using an in-memory counter")
		return CounterOut{Store: counter.NewMemoryStore(), Options: o}, nil
	}

	svc, err := counter.NewDynamoDB(o)
	if err != nil {
		return CounterOut{}, err
	}

	if o.CreateTable {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				created, err := counter.EnsureTable(ctx, svc, o.TableName())
				if err == nil {
					logger.Info("counter table ready", zap.String("table", o.TableName()), zap.Bool("created", created))
				}

				return err
			},
		})
	}

	return CounterOut{Store: counter.NewDynamoStore(svc, o.TableName()), Options: o}, nil
}

func provideRegistry(v *viper.Viper) (xmetrics.Registry, error) {
	o := new(xmetrics.Options)
	if err := server.Unmarshal(v, MetricsKey, o); err != nil {
		return nil, err
	}

	return xmetrics.NewRegistry(o, compute.Metrics)
}

func provideMeasures(r xmetrics.Registry) compute.Measures {
	return compute.NewMeasures(r)
}

// provideClient builds the outbound client, propagating the trace to the target
func provideClient(v *viper.Viper, tp trace.TracerProvider) (*http.Client, error) {
	o := new(xhttp.ClientOptions)
	if err := server.Unmarshal(v, ClientKey, o); err != nil {
		return nil, err
	}

	o.Decorators = append(o.Decorators, func(next http.RoundTripper) http.RoundTripper {
		return otelhttp.NewTransport(next, otelhttp.WithTracerProvider(tp))
	})

	return xhttp.NewClient(o), nil
}

// RoutesIn are the dependencies of the units
type RoutesIn struct {
	fx.In

	Viper    *viper.Viper
	Store    counter.Store
	Counter  *counter.Options
	Tracer   *tracing.Tracer
	Client   *http.Client
	Measures compute.Measures
}

func provideRoutes(in RoutesIn) []gateway.Route {
	common := []compute.Option{
		compute.WithTracer(in.Tracer),
		compute.WithMeasures(in.Measures),
	}

	if in.Viper.IsSet(DelayKey) {
		common = append(common, compute.WithDelay(in.Viper.GetDuration(DelayKey)))
	}

	one := append([]compute.Option{
		compute.WithClient(in.Client),
		compute.WithTargetURL(in.Viper.GetString(TargetURLKey)),
		compute.WithKey(in.Counter.CounterKeyValue()),
	}, common...)

	return gateway.DefaultRoutes(
		compute.NewUnitOne(in.Store, one...),
		compute.NewUnitTwo(common...),
	)
}

// RouterIn are the dependencies of the router
type RouterIn struct {
	fx.In

	Routes         []gateway.Route
	Logger         *zap.Logger
	Tracer         *tracing.Tracer
	Measures       compute.Measures
	TracerProvider trace.TracerProvider
	Registry       xmetrics.Registry
}

func provideRouter(in RouterIn) *mux.Router {
	router := gateway.NewRouter(
		in.Routes,
		gateway.WithLogger(in.Logger),
		gateway.WithMeasures(in.Measures),
		gateway.WithTracerProvider(in.TracerProvider),
	)

	router.Handle(metricsPath, promhttp.HandlerFor(in.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return router
}
