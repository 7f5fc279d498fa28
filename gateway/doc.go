// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package gateway exposes compute units over HTTP.

NewLambdaHandler adapts a unit to an API Gateway proxy integration running in AWS
Lambda.  NewRouter serves the same routes from a local HTTP server, which is handy for
running the demo without deploying it.  In both cases a unit error is not handled: in
Lambda it fails the invocation, and locally it becomes a 500 response.
*/
package gateway
