// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics builds a Prometheus registry from metric descriptors declared by each
package, and hands those metrics out behind the go-kit metrics interfaces.
*/
package xmetrics
