// Package demux routes records from one source to the destinations whose
// name lists requested them, and reconciles observed against expected
// counts afterwards. It never imports app, cli or appcore; keep it
// domain-only.
package demux
