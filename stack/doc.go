// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package stack defines the AWS infrastructure of the demo as a CDK stack: the counter
table, the two Lambda functions with active X-Ray tracing, and the traced REST API
that routes to them.
*/
package stack
