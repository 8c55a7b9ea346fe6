//go:build !integration

package commandconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSchemaCompiles(t *testing.T) {
	schemas, err := configSchemas()
	require.NoError(t, err, "Embedded schema should compile")
	require.NotNil(t, schemas.document)
	require.NotNil(t, schemas.block)
}

func TestValidateStructure(t *testing.T) {
	t.Run("minimal document", func(t *testing.T) {
		assert.NoError(t, validateStructure(map[string]any{"allCommands": []any{}}))
	})

	t.Run("blocks are not checked", func(t *testing.T) {
		doc := map[string]any{"allCommands": []any{
			map[string]any{"type": "FORMAT"},
			"not a block",
		}}
		assert.NoError(t, validateStructure(doc), "Blocks are checked during the walk")
	})

	t.Run("violation points at the location", func(t *testing.T) {
		err := validateStructure(map[string]any{"allCommands": "FORMAT"})
		v := requireViolation(t, err, KindDamaged)
		assert.Contains(t, v.Message, "at /allCommands:")
		assert.Error(t, v.Unwrap(), "Schema error should be kept as cause")
	})
}

func TestValidateBlock(t *testing.T) {
	t.Run("command entries are not checked", func(t *testing.T) {
		block := map[string]any{"type": "FORMAT", "commands": []any{true, nil}}
		assert.NoError(t, validateBlock(0, block), "Command entries are left to the walk")
	})

	t.Run("violation points at the block", func(t *testing.T) {
		err := validateBlock(2, map[string]any{"type": "FORMAT"})
		v := requireViolation(t, err, KindDamaged)
		assert.Contains(t, v.Message, "at /allCommands/2:")
		assert.Contains(t, v.Message, "commands")
	})

	t.Run("violation points inside the block", func(t *testing.T) {
		err := validateBlock(1, map[string]any{"type": 7, "commands": []any{}})
		v := requireViolation(t, err, KindDamaged)
		assert.Contains(t, v.Message, "at /allCommands/1/type:")
	})
}
