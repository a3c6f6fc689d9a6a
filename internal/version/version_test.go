package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require.Equal(t, "sitecontent dev (commit unknown, built unknown)", String())
}
