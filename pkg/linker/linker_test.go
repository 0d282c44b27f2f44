package linker_test

import (
	"testing"

	"github.com/gtdbfetch/gtdbfetch/internal/iolinker"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/gtdbfetch/gtdbfetch/pkg/linker"
	"github.com/stretchr/testify/require"
)

// TestMaterializerContract verifies both iolinker constructors
// satisfy the linker.Materializer interface.
func TestMaterializerContract(t *testing.T) {
	tree, err := iolinker.New(t.TempDir())
	require.NoError(t, err)
	var _ linker.Materializer = tree

	flat, err := iolinker.NewFlat(t.TempDir(), gtdb.Species)
	require.NoError(t, err)
	var _ linker.Materializer = flat
}
