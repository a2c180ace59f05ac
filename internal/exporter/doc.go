// Package exporter serializes filtered derived record sets for download:
// CSV text, xlsx workbooks, and paginated tabular PDF reports.
package exporter
