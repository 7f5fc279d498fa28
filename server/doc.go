// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server bootstraps the xraydemo processes: viper configuration bound to command
line flags, zap logging through sallust, and the local HTTP server.
*/
package server
