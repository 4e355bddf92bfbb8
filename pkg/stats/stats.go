// Package stats provides streaming aggregation over filtered log records.
package stats

import (
	"time"

	"logsift/pkg/logline"
)

// hourKey is the bucket key format for per-hour counts,
// e.g. "2025-11-23 19:00".
const hourKey = "2006-01-02 15:00"

// Collector accumulates statistics one record at a time. It follows a
// single-writer discipline: exactly one consumer calls Observe. No I/O,
// no blocking; O(1) work per record.
type Collector struct {
	total   int
	levels  map[logline.Level]int
	perHour map[string]int
	first   time.Time
	last    time.Time
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		levels:  make(map[logline.Level]int),
		perHour: make(map[string]int),
	}
}

// Observe folds one record into the running statistics. Level and hour
// buckets only count records where the respective field is present.
func (c *Collector) Observe(rec logline.Record) {
	c.total++

	if rec.HasLevel() {
		c.levels[rec.Level]++
	}

	if rec.HasTimestamp() {
		c.perHour[rec.Timestamp.Format(hourKey)]++
		if c.first.IsZero() || rec.Timestamp.Before(c.first) {
			c.first = rec.Timestamp
		}
		if c.last.IsZero() || rec.Timestamp.After(c.last) {
			c.last = rec.Timestamp
		}
	}
}

// Snapshot is an immutable copy of the accumulated statistics, safe to
// hand to any output formatter.
type Snapshot struct {
	// Total is the count of records seen post-filter.
	Total int `json:"total_lines"`

	// Levels maps normalized level to count. Only records with a
	// detected level are counted.
	Levels map[string]int `json:"levels"`

	// PerHour maps hour-bucket keys ("2006-01-02 15:00") to counts.
	// Only records with a parsed timestamp are counted.
	PerHour map[string]int `json:"per_hour"`

	// First and Last are the minimum and maximum observed timestamps in
	// the canonical layout, empty when no record carried a timestamp.
	First string `json:"first_timestamp,omitempty"`
	Last  string `json:"last_timestamp,omitempty"`
}

// Snapshot returns a copy of the current statistics. The Collector may
// keep accumulating afterwards without affecting the returned value.
func (c *Collector) Snapshot() *Snapshot {
	snap := &Snapshot{
		Total:   c.total,
		Levels:  make(map[string]int, len(c.levels)),
		PerHour: make(map[string]int, len(c.perHour)),
	}
	for lvl, n := range c.levels {
		snap.Levels[string(lvl)] = n
	}
	for hour, n := range c.perHour {
		snap.PerHour[hour] = n
	}
	if !c.first.IsZero() {
		snap.First = c.first.Format(logline.DefaultLayout)
		snap.Last = c.last.Format(logline.DefaultLayout)
	}
	return snap
}
