package client

import (
	"time"

	"github.com/litetable/litetable-bigtable/filter"
	"github.com/litetable/litetable-bigtable/row"
)

// Ensure Table can back a row.
var _ row.Table = (*Table)(nil)

// Table is a handle to one table of the client's instance.
type Table struct {
	id     string
	client *Client
}

func (t *Table) ID() string { return t.id }

// Name is the resource name
// projects/{project}/instances/{instance}/tables/{table}.
func (t *Table) Name() string {
	return t.client.InstanceName() + "/tables/" + t.id
}

func (t *Table) Timeout() time.Duration { return t.client.timeout }

func (t *Table) DataClient() row.DataClient { return t.client.data }

// Row returns an unconditional row of this table.
func (t *Table) Row(key []byte) *row.Row {
	return row.New(key, t)
}

// ConditionalRow returns a row whose mutations are gated on f.
func (t *Table) ConditionalRow(key []byte, f filter.Filter) (*row.Row, error) {
	return row.NewConditional(key, t, f)
}
