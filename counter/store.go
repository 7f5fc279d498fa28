// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"context"
	"errors"
)

const (
	// DefaultTableName is the table provisioned for the demo
	DefaultTableName = "xray-demo-table"

	// DefaultKey is the partition key value of the demo counter record
	DefaultKey = "TestItem"

	// PartitionKeyAttribute is the name of the string partition key of the table
	PartitionKeyAttribute = "pk"

	// CountAttribute is the name of the numeric attribute holding the count
	CountAttribute = "count"
)

// ErrNoCount is returned when the store did not report an updated count
var ErrNoCount = errors.New("no count returned for counter")

// Store is a persistent set of named counters
type Store interface {
	// Increment adds one to the named counter, initializing it to zero if absent, in a
	// single atomic step.  It returns the value after the increment.
	Increment(ctx context.Context, key string) (int64, error)
}
