// Package diagnostic provides structured warnings, errors, and notes
// collected while analyzing a bean graph and synthesizing parsers.
//
// Key capabilities:
//   - Unresolved type warnings (recorded as skipped, run continues)
//   - Custom parser routing notes
//   - Enum fields where unmatched wire values are dropped
//   - Unhandled shapes that degraded to placeholders
package diagnostic
