// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/xraydemo/compute"
	"github.com/xmidt-org/xraydemo/tracing"
	"github.com/xmidt-org/xraydemo/tracing/tracinghttp"
	"github.com/xmidt-org/xraydemo/xhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	// RouteOne is the path served by UnitOne
	RouteOne = "/ykkonen"

	// RouteTwo is the path served by UnitTwo
	RouteTwo = "/kakkonen"
)

// Route maps a GET path to a unit
type Route struct {
	Path string
	Unit compute.Unit
}

// DefaultRoutes are the two demo routes
func DefaultRoutes(one, two compute.Unit) []Route {
	return []Route{
		{Path: RouteOne, Unit: one},
		{Path: RouteTwo, Unit: two},
	}
}

// integrationRequest is the fixed payload API Gateway hands to the units
type integrationRequest struct {
	StatusCode string
}

var fixedRequest = integrationRequest{StatusCode: "200"}

// NewRouter serves each route with GET on a mux.Router.  Requests are decorated with a
// request id and logger, and traced with otelhttp so that units see an active trace.
func NewRouter(routes []Route, o ...Option) *mux.Router {
	var (
		opts   = newOptions(o)
		router = mux.NewRouter()
	)

	for _, route := range routes {
		chain := alice.New(
			opts.serverSpan("GET "+route.Path),
			RequestLogging(opts.logger),
			xhttp.Timeout(opts.timeout),
		)

		router.Handle(route.Path, chain.Then(opts.newUnitHandler(route.Unit))).Methods(http.MethodGet)
	}

	return router
}

// serverSpan is an alice constructor that starts an OpenTelemetry server span per request
func (o *options) serverSpan(operation string) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operation, otelhttp.WithTracerProvider(o.tracerProvider))
	}
}

func (o *options) newUnitHandler(unit compute.Unit) http.Handler {
	return kithttp.NewServer(
		o.newUnitEndpoint(unit),
		decodeUnitRequest,
		o.encodeUnitResponse,
		kithttp.ServerBefore(withRecorder),
		kithttp.ServerErrorEncoder(o.encodeUnitError),
		kithttp.ServerErrorHandler(errorLogger{}),
	)
}

func (o *options) newUnitEndpoint(unit compute.Unit) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		response, _, err := o.invoke(ctx, unit)
		return response, err
	}
}

func withRecorder(ctx context.Context, _ *http.Request) context.Context {
	return tracing.WithRecorder(ctx, new(tracing.Recorder))
}

func decodeUnitRequest(context.Context, *http.Request) (interface{}, error) {
	return fixedRequest, nil
}

func (o *options) encodeUnitResponse(ctx context.Context, rw http.ResponseWriter, response interface{}) error {
	body, err := EncodeResponse(response.(compute.Response))
	if err != nil {
		return err
	}

	tracinghttp.HeadersForSpanned(o.timeLayout, rw.Header(), tracing.GetRecorder(ctx))
	rw.Header().Set(contentTypeHeader, jsonContentType)
	_, err = rw.Write(body)
	return err
}

// encodeUnitError answers every unhandled error with a 500.  Span headers travel on the
// *xhttp.Error so that go-kit's default encoder writes them along with the JSON body.
func (o *options) encodeUnitError(ctx context.Context, err error, rw http.ResponseWriter) {
	header := make(http.Header)
	if r := tracing.GetRecorder(ctx); r != nil {
		tracinghttp.HeadersForSpanned(o.timeLayout, header, r)
	}

	kithttp.DefaultErrorEncoder(ctx, &xhttp.Error{
		Code:   http.StatusInternalServerError,
		Header: header,
		Text:   err.Error(),
	}, rw)
}

// errorLogger logs unit failures along with every failed subsegment of the request
type errorLogger struct{}

func (errorLogger) Handle(ctx context.Context, err error) {
	sallust.Get(ctx).Error("unit invocation failed", zap.Error(err), failedSubsegments(tracing.GetRecorder(ctx)))
}

// failedSubsegments is a log field listing the failed spans of a recorder.  It is
// skipped when nothing failed.
func failedSubsegments(r *tracing.Recorder) zap.Field {
	if r == nil {
		return zap.Skip()
	}

	return zap.NamedError("subsegments", r.Err())
}
