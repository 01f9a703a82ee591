package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartin/ptadiff/pkg/pta"
)

// resetSchemaState restores the global flag variables and viper between
// tests, since cobra wires them as package globals.
func resetSchemaState(t *testing.T) {
	t.Helper()
	categoryFlag = ""
	keyColumn = ""
	massColumn = ""
	refColumn = ""
	motorColumn = ""
	viper.Reset()
	t.Cleanup(func() {
		categoryFlag = ""
		keyColumn = ""
		massColumn = ""
		refColumn = ""
		motorColumn = ""
		viper.Reset()
	})
}

func TestBuildSchemaRequiresIdentity(t *testing.T) {
	resetSchemaState(t)

	_, err := buildSchema(pta.CategoryVP)
	require.Error(t, err)
}

func TestBuildSchemaFromConfig(t *testing.T) {
	resetSchemaState(t)

	viper.Set("schema.identity", "Code véhicule")

	schema, err := buildSchema(pta.CategoryVP)
	require.NoError(t, err)
	assert.Equal(t, "Code véhicule", schema.IdentityColumn)
	assert.Equal(t, pta.DefaultMassColumn, schema.MassColumn)
	assert.Equal(t, pta.DefaultReferenceColumn, schema.ReferenceColumn)
}

func TestBuildSchemaFlagsOverrideConfig(t *testing.T) {
	resetSchemaState(t)

	viper.Set("schema.identity", "Code véhicule")
	viper.Set("schema.mass", "Masse config")
	keyColumn = "Code flag"
	massColumn = "Masse flag"

	schema, err := buildSchema(pta.CategoryVP)
	require.NoError(t, err)
	assert.Equal(t, "Code flag", schema.IdentityColumn)
	assert.Equal(t, "Masse flag", schema.MassColumn)
}

func TestBuildSchemaCategoryOverrides(t *testing.T) {
	resetSchemaState(t)

	viper.Set("schema.identity", "Code véhicule")
	viper.Set("schema.vu.identity", "Code VU")

	vp, err := buildSchema(pta.CategoryVP)
	require.NoError(t, err)
	assert.Equal(t, "Code véhicule", vp.IdentityColumn)

	vu, err := buildSchema(pta.CategoryVU)
	require.NoError(t, err)
	assert.Equal(t, "Code VU", vu.IdentityColumn)
}

func TestBuildSchemaFlagsBeatCategoryOverrides(t *testing.T) {
	resetSchemaState(t)

	viper.Set("schema.identity", "Code véhicule")
	viper.Set("schema.vu.identity", "Code VU")
	keyColumn = "Code flag"

	vu, err := buildSchema(pta.CategoryVU)
	require.NoError(t, err)
	assert.Equal(t, "Code flag", vu.IdentityColumn)
}

func TestBuildCategory(t *testing.T) {
	resetSchemaState(t)

	category, err := buildCategory()
	require.NoError(t, err)
	assert.Equal(t, pta.DefaultCategory, category)

	viper.Set("category", "vu")
	category, err = buildCategory()
	require.NoError(t, err)
	assert.Equal(t, pta.CategoryVU, category)

	categoryFlag = "vp"
	category, err = buildCategory()
	require.NoError(t, err)
	assert.Equal(t, pta.CategoryVP, category)

	categoryFlag = "bogus"
	_, err = buildCategory()
	require.Error(t, err)
}
