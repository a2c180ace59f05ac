// Package dataprocessing implements the metrics derivation and aggregation
// pipeline: CSV ingestion with null-filling, per-record derivation of
// Efficiency and Performance_Level, summary aggregation, and atomic
// materialization of the derived table.
//
// The pipeline is linear (Ingest -> Derive -> Materialize) with no shared
// mutable state. Readers of the materialized store always observe a complete
// snapshot because writes go through a temp-file rename.
package dataprocessing
