package cmd

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jfmartin/ptadiff/pkg/pta"
)

// Schema-related flags shared by the compare and export commands.
var (
	categoryFlag string
	keyColumn    string
	massColumn   string
	refColumn    string
	motorColumn  string
)

// addSchemaFlags registers the column and category flags on a command.
func addSchemaFlags(flags *pflag.FlagSet) {
	flags.StringVar(&categoryFlag, "category", "", "PTA category: vp or vu (default: vp, or the category config key)")
	flags.StringVar(&keyColumn, "key-column", "", "header label of the stable vehicle identity column (required unless schema.identity is configured)")
	flags.StringVar(&massColumn, "mass-column", "", "header label of the mass column (default: \""+pta.DefaultMassColumn+"\")")
	flags.StringVar(&refColumn, "reference-column", "", "header label of the spring reference column (default: \""+pta.DefaultReferenceColumn+"\")")
	flags.StringVar(&motorColumn, "motor-column", "", "header label of the motor column (default: \""+pta.DefaultMotorColumn+"\")")
}

// buildCategory resolves the vehicle category from flag or config.
func buildCategory() (pta.Category, error) {
	value := categoryFlag
	if value == "" {
		value = viper.GetString("category")
	}
	return pta.ParseCategory(value)
}

// buildSchema resolves the column schema from defaults, config file, and
// flags, in increasing precedence, then applies the category profile.
func buildSchema(category pta.Category) (pta.Schema, error) {
	schema := pta.DefaultSchema()

	if v := viper.GetString("schema.mass"); v != "" {
		schema.MassColumn = v
	}
	if v := viper.GetString("schema.reference"); v != "" {
		schema.ReferenceColumn = v
	}
	if v := viper.GetString("schema.identity"); v != "" {
		schema.IdentityColumn = v
	}
	if v := viper.GetString("schema.motor"); v != "" {
		schema.MotorColumn = v
	}

	schema.Overrides = map[pta.Category]pta.SchemaOverride{}
	for _, cat := range []pta.Category{pta.CategoryVP, pta.CategoryVU} {
		prefix := "schema." + strings.ToLower(cat.String()) + "."
		override := pta.SchemaOverride{
			MassColumn:      viper.GetString(prefix + "mass"),
			ReferenceColumn: viper.GetString(prefix + "reference"),
			IdentityColumn:  viper.GetString(prefix + "identity"),
			MotorColumn:     viper.GetString(prefix + "motor"),
		}
		if override != (pta.SchemaOverride{}) {
			schema.Overrides[cat] = override
		}
	}

	resolved := schema.ForCategory(category)

	// Flags take precedence over config and category overrides
	if massColumn != "" {
		resolved.MassColumn = massColumn
	}
	if refColumn != "" {
		resolved.ReferenceColumn = refColumn
	}
	if keyColumn != "" {
		resolved.IdentityColumn = keyColumn
	}
	if motorColumn != "" {
		resolved.MotorColumn = motorColumn
	}

	if err := resolved.Validate(); err != nil {
		return pta.Schema{}, err
	}
	return resolved, nil
}
