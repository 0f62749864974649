// Package jobs contains the scheduled board pollers. Each role view (kitchen,
// cashier, courier) is refreshed on a fixed interval and pushed to an
// OrderBoardSink; clients tolerate up to one interval of staleness.
package jobs
