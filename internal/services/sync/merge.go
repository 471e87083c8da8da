package sync

import (
	"sort"
	"time"
)

// Record is an entity that can take part in reconciliation: it has a
// stable identifier and a recency timestamp for last-write-wins.
type Record interface {
	MergeID() string
	RecencyKey() time.Time
}

// Merge combines a locally cached collection with a freshly fetched remote
// collection of the same entity type into one deduplicated view.
//
// Every ID present in either input appears exactly once in the output.
// Within a group the copy with the later RecencyKey wins; on an exact tie
// the local copy wins, since it reflects the device's own just-performed
// mutation. The result is sorted by less, with MergeID breaking ties so
// the ordering is deterministic regardless of argument order.
func Merge[T Record](local, remote []T, less func(a, b T) bool) []T {
	merged := make(map[string]T, len(local)+len(remote))

	for _, rec := range remote {
		cur, ok := merged[rec.MergeID()]
		if !ok || rec.RecencyKey().After(cur.RecencyKey()) {
			merged[rec.MergeID()] = rec
		}
	}

	// Local entries replace remote ones unless strictly older
	for _, rec := range local {
		cur, ok := merged[rec.MergeID()]
		if !ok || !rec.RecencyKey().Before(cur.RecencyKey()) {
			merged[rec.MergeID()] = rec
		}
	}

	out := make([]T, 0, len(merged))
	for _, rec := range merged {
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		if less(out[i], out[j]) {
			return true
		}
		if less(out[j], out[i]) {
			return false
		}
		return out[i].MergeID() < out[j].MergeID()
	})

	return out
}
