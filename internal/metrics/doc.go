// Package metrics defines the observability hooks of the listing pipeline.
//
// A one-shot CLI has nothing to scrape, so the Prometheus recorder is paired
// with WriteTextfile, which dumps the registry for a node-exporter textfile
// collector at the end of an invocation.
package metrics
