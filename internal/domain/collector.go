package domain

import m "ifbound.dev/pkg/ifbound/internal/model"

// Collector accumulates the records of one input file in insertion order.
type Collector struct {
	records []m.BoundaryRecord
}

// Append adds records to the collector.
func (c *Collector) Append(records ...m.BoundaryRecord) {
	c.records = append(c.records, records...)
}

// Len returns the number of records collected so far.
func (c *Collector) Len() int {
	return len(c.records)
}

// Drain returns the collected records and empties the collector.
func (c *Collector) Drain() []m.BoundaryRecord {
	records := c.records
	c.records = nil

	return records
}
