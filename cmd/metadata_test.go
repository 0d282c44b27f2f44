package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetMetadataCmd_Exists verifies getMetadataCmd returns
// a valid command.
func TestGetMetadataCmd_Exists(t *testing.T) {
	cmd := getMetadataCmd()
	require.NotNil(t, cmd, "Metadata command should exist")
	assert.Equal(t, "metadata", cmd.Use,
		"Command name should be metadata")
	assert.Contains(t, cmd.Aliases, "md",
		"md alias should be registered")
}

// TestGetMetadataCmd_Descriptions verifies descriptions mention
// the catalog.
func TestGetMetadataCmd_Descriptions(t *testing.T) {
	cmd := getMetadataCmd()

	assert.NotEmpty(t, cmd.Short,
		"Short description should not be empty")
	assert.Contains(t, cmd.Short, "catalog",
		"Short description should mention the catalog")
	assert.Contains(t, cmd.Long, "genomes",
		"Long description should set genome downloads apart")
}

// TestGetMetadataCmd_Flags verifies every flag is registered.
func TestGetMetadataCmd_Flags(t *testing.T) {
	cmd := getMetadataCmd()

	for _, name := range []string{
		"release", "dataset", "mirror",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name),
			"--%s flag should exist", name)
	}
	assert.Nil(t, cmd.Flags().Lookup("taxon"),
		"metadata command should not take a taxon")
}

// TestGetMetadataCmd_HasRunE verifies run function is set.
func TestGetMetadataCmd_HasRunE(t *testing.T) {
	cmd := getMetadataCmd()
	assert.NotNil(t, cmd.RunE, "RunE should be set")
}
