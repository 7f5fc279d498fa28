// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package compute holds the two demo compute units.

UnitOne increments the persisted counter, calls an external host and then waits,
failing on purpose whenever the new count ends in 9.  UnitTwo only waits.  Both tag the
trace with their component name and run their steps inside trace subsegments, which
makes them a small but complete source of traces with both successes and faults.
*/
package compute
