package pasconfig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsNonPositiveMaxTracks(t *testing.T) {
	c := DefaultConfig()
	c.MaxTracks = 0
	require.Error(t, c.Validate())
}

func TestValidateRejectsOverflowingMaxTracks(t *testing.T) {
	c := DefaultConfig()
	c.MaxTracks = 32
	require.Error(t, c.Validate())
}

func TestValidateRejectsNonPositiveDeterminizationBudget(t *testing.T) {
	c := DefaultConfig()
	c.MaxDeterminizationStates = 0
	require.Error(t, c.Validate())
}
