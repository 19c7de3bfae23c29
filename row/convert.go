package row

import (
	"time"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
)

// convertFromProtoRow reshapes the row echoed by ReadModifyWriteRow.
func convertFromProtoRow(pbRow *bigtablepb.Row) Modified {
	result := make(Modified)

	for _, family := range pbRow.GetFamilies() {
		qualifiers, ok := result[family.GetName()]
		if !ok {
			qualifiers = make(VersionedQualifier)
			result[family.GetName()] = qualifiers
		}

		for _, column := range family.GetColumns() {
			qualifier := string(column.GetQualifier())
			values := qualifiers[qualifier]

			for _, cell := range column.GetCells() {
				values = append(values, TimestampedValue{
					Value:     cell.GetValue(),
					Timestamp: time.UnixMicro(cell.GetTimestampMicros()).UTC(),
				})
			}

			qualifiers[qualifier] = values
		}
	}

	return result
}
