package row

import (
	"time"
)

// TimestampedValue is one cell version returned by the server.
type TimestampedValue struct {
	Value     []byte
	Timestamp time.Time
}

// VersionedQualifier maps qualifiers to their cells.
type VersionedQualifier map[string][]TimestampedValue

// Modified holds the cells written by CommitModifications:
//
//	Modified{
//	  "counters": {
//	    "visits": {{Value: []byte{0, 0, 0, 0, 0, 0, 0, 3}, Timestamp: ...}},
//	  },
//	  "log": {
//	    "trail": {{Value: []byte("a,b,c"), Timestamp: ...}},
//	  },
//	}
//
// Cells keep the order the server returned them in; they are not re-sorted
// by timestamp.
type Modified map[string]VersionedQualifier // family -> qualifier -> []TimestampedValue

// CommitResult describes the outcome of Commit.
type CommitResult struct {
	// Sent is false when there was nothing to commit and no request was made.
	Sent bool
	// PredicateMatched reports, for a conditional row, whether the filter
	// matched any cell and so which branch the server applied.
	PredicateMatched bool
}
