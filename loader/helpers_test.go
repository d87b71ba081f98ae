package loader

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, time.March, 14, 8, 0, 0, 0, time.UTC)

func testdataPath(name string) string {
	return filepath.Join("..", "testdata", name)
}

func boston(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}
