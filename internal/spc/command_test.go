package spc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArmCommand(t *testing.T) {
	for mode, want := range map[AreaMode]string{
		AreaModeUnset:    "unset",
		AreaModePartSetA: "set_a",
		AreaModePartSetB: "set_b",
		AreaModeFullSet:  "set",
	} {
		cmd, err := armCommand(mode)
		require.NoError(t, err)
		require.Equal(t, want, cmd)
	}
}

func TestArmCommandRejectsUnsupportedModes(t *testing.T) {
	for _, mode := range []AreaMode{AreaModeUnknown, AreaMode(42), AreaMode(-1)} {
		_, err := armCommand(mode)
		require.Error(t, err)
	}
}
