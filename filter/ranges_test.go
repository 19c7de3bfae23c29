package filter

import (
	"testing"
	"time"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestColumnRange_Proto(t *testing.T) {
	tests := map[string]struct {
		rng  ColumnRange
		want *bigtablepb.ColumnRange
	}{
		"family only": {
			rng:  ColumnRange{Family: "fam"},
			want: &bigtablepb.ColumnRange{FamilyName: "fam"},
		},
		"inclusive by default": {
			rng: ColumnRange{Family: "fam", Start: []byte("a"), End: []byte("z")},
			want: &bigtablepb.ColumnRange{
				FamilyName:     "fam",
				StartQualifier: &bigtablepb.ColumnRange_StartQualifierClosed{StartQualifierClosed: []byte("a")},
				EndQualifier:   &bigtablepb.ColumnRange_EndQualifierClosed{EndQualifierClosed: []byte("z")},
			},
		},
		"exclusive start keeps inclusive end": {
			rng: ColumnRange{Family: "fam", Start: []byte("a"), End: []byte("z"), ExclusiveStart: true},
			want: &bigtablepb.ColumnRange{
				FamilyName:     "fam",
				StartQualifier: &bigtablepb.ColumnRange_StartQualifierOpen{StartQualifierOpen: []byte("a")},
				EndQualifier:   &bigtablepb.ColumnRange_EndQualifierClosed{EndQualifierClosed: []byte("z")},
			},
		},
		"both exclusive": {
			rng: ColumnRange{
				Family:         "fam",
				Start:          []byte("a"),
				End:            []byte("z"),
				ExclusiveStart: true,
				ExclusiveEnd:   true,
			},
			want: &bigtablepb.ColumnRange{
				FamilyName:     "fam",
				StartQualifier: &bigtablepb.ColumnRange_StartQualifierOpen{StartQualifierOpen: []byte("a")},
				EndQualifier:   &bigtablepb.ColumnRange_EndQualifierOpen{EndQualifierOpen: []byte("z")},
			},
		},
		"missing start is omitted": {
			rng: ColumnRange{Family: "fam", End: []byte("z"), ExclusiveStart: true, ExclusiveEnd: true},
			want: &bigtablepb.ColumnRange{
				FamilyName:   "fam",
				EndQualifier: &bigtablepb.ColumnRange_EndQualifierOpen{EndQualifierOpen: []byte("z")},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := tc.rng.Proto()
			require.Empty(t, cmp.Diff(tc.want, got, protocmp.Transform()))
		})
	}
}

func TestValueRange_Proto(t *testing.T) {
	req := require.New(t)

	got := ValueRange{Start: []byte("1"), End: []byte("9"), ExclusiveEnd: true}.Proto()
	want := &bigtablepb.ValueRange{
		StartValue: &bigtablepb.ValueRange_StartValueClosed{StartValueClosed: []byte("1")},
		EndValue:   &bigtablepb.ValueRange_EndValueOpen{EndValueOpen: []byte("9")},
	}
	req.Empty(cmp.Diff(want, got, protocmp.Transform()))

	got = ValueRange{ExclusiveStart: true}.Proto()
	req.Nil(got.GetStartValue())
	req.Nil(got.GetEndValue())
}

func TestTimestampRange_Proto(t *testing.T) {
	req := require.New(t)

	epoch := time.Unix(0, 0)
	got := TimestampRange{
		Start: epoch.Add(898294371 * time.Microsecond),
		End:   epoch.Add(898295999 * time.Microsecond),
	}.Proto()
	req.Equal(int64(898294000), got.GetStartTimestampMicros())
	req.Equal(int64(898295000), got.GetEndTimestampMicros())

	unbounded := TimestampRange{}.Proto()
	req.Zero(unbounded.GetStartTimestampMicros())
	req.Zero(unbounded.GetEndTimestampMicros())
}

func TestRanges_Equal(t *testing.T) {
	req := require.New(t)

	req.True(ColumnRange{Family: "f", Start: []byte("a")}.Equal(ColumnRange{Family: "f", Start: []byte("a")}))
	req.False(ColumnRange{Family: "f"}.Equal(ColumnRange{Family: "g"}))
	req.False(ColumnRange{Family: "f", Start: []byte{}}.Equal(ColumnRange{Family: "f"}))
	req.False(ValueRange{End: []byte("z")}.Equal(ValueRange{End: []byte("z"), ExclusiveEnd: true}))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	req.True(TimestampRange{Start: start}.Equal(TimestampRange{Start: start.In(time.Local)}))
	req.False(TimestampRange{Start: start}.Equal(TimestampRange{End: start}))
}
