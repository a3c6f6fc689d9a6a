package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		attr slog.Attr
		key  string
		val  string
	}{
		{BuildID("b1"), KeyBuildID, "b1"},
		{Kind("event"), KeyKind, "event"},
		{DocID("q4-intensive"), KeyDocID, "q4-intensive"},
		{Field("price"), KeyField, "price"},
		{Path("content/events"), KeyPath, "content/events"},
		{Stage("coerce"), KeyStage, "coerce"},
		{Reason("duplicate_id"), KeyReason, "duplicate_id"},
	}
	for _, c := range cases {
		require.Equal(t, c.key, c.attr.Key)
		require.Equal(t, c.val, c.attr.Value.String())
	}
}

func TestNumericHelpers(t *testing.T) {
	require.Equal(t, int64(3), Count(3).Value.Int64())
	require.InDelta(t, 1.5, DurationMS(1.5).Value.Float64(), 0.0001)
}

func TestErrorHelper(t *testing.T) {
	require.Equal(t, "", Error(nil).Value.String())
	require.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}
