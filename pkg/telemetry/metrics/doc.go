// Package metrics records prometheus metrics for the tree passes and the dict
// codec.
//
// Metrics live on a registry owned by the Collector rather than the global
// default registry. The CLI is short-lived, so instead of serving the
// registry it is flushed once to a textfile:
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	collector.RecordAnnotate(n, time.Since(start))
//	_ = collector.WriteTextfile(cfg.Metrics.TextfilePath)
package metrics
