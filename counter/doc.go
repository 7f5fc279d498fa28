// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package counter persists the single demo counter.  A Store increments a named counter
atomically, creating it at zero first when it does not exist yet, and returns the
updated value.  DynamoStore is backed by a DynamoDB table; MemoryStore keeps counters
in process and is meant for local runs and tests.
*/
package counter
