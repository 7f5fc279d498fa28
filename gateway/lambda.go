// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/xraydemo/compute"
	"go.uber.org/zap"
)

// LambdaHandler is an API Gateway proxy handler, as accepted by lambda.Start
type LambdaHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewLambdaHandler adapts a unit to API Gateway.  The request is ignored.  A unit error
// is returned as is, failing the invocation and leaving the status to API Gateway.
//
// X-Ray does not accept annotations on the segment Lambda creates for a function, so
// configure a Tracer with WithTracer to give the unit a subsegment of its own.
func NewLambdaHandler(unit compute.Unit, o ...Option) LambdaHandler {
	opts := newOptions(o)
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		logger := opts.logger.With(
			zap.String("requestId", request.RequestContext.RequestID),
			zap.String("path", request.Path),
			zap.String("component", unit.Name()),
		)

		ctx = sallust.With(ctx, logger)
		response, recorder, err := opts.invoke(ctx, unit)
		if err != nil {
			logger.Error("unit invocation failed", zap.Error(err), failedSubsegments(recorder))
			return events.APIGatewayProxyResponse{}, err
		}

		body, err := EncodeResponse(response)
		if err != nil {
			logger.Error("unable to encode response", zap.Error(err))
			return events.APIGatewayProxyResponse{}, err
		}

		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{contentTypeHeader: jsonContentType},
			Body:       string(body),
		}, nil
	}
}
