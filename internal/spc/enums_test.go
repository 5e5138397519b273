package spc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAreaMode(t *testing.T) {
	require.Equal(t, AreaModeUnset, ParseAreaMode("0"))
	require.Equal(t, AreaModePartSetA, ParseAreaMode("1"))
	require.Equal(t, AreaModePartSetB, ParseAreaMode("2"))
	require.Equal(t, AreaModeFullSet, ParseAreaMode("3"))
}

func TestParseZoneEnums(t *testing.T) {
	require.Equal(t, ZoneInputClosed, ParseZoneInput("0"))
	require.Equal(t, ZoneInputOpen, ParseZoneInput("1"))
	require.Equal(t, ZoneInputOffline, ParseZoneInput("7"))

	require.Equal(t, ZoneTypeAlarm, ParseZoneType("1"))
	require.Equal(t, ZoneTypeEntryExit, ParseZoneType("2"))
	require.Equal(t, ZoneTypeKeyArm, ParseZoneType("9"))

	require.Equal(t, ZoneStatusOK, ParseZoneStatus("0"))
	require.Equal(t, ZoneStatusAlarm, ParseZoneStatus("5"))
	require.Equal(t, ZoneStatusTrouble, ParseZoneStatus("6"))
}

func TestParseMalformedValuesFallBack(t *testing.T) {
	for _, raw := range []string{"", "99", "-1", "set", "\x00", "0.0"} {
		require.Equal(t, AreaModeUnknown, ParseAreaMode(raw), "raw %q", raw)
		require.Equal(t, ZoneInputUnknown, ParseZoneInput(raw), "raw %q", raw)
		require.Equal(t, ZoneTypeUnknown, ParseZoneType(raw), "raw %q", raw)
		require.Equal(t, ZoneStatusUnknown, ParseZoneStatus(raw), "raw %q", raw)
	}
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "Full Set", AreaModeFullSet.String())
	require.Equal(t, "PIR Masked", ZoneInputPIRMasked.String())
	require.Equal(t, "Entry/Exit", ZoneTypeEntryExit.String())
	require.Equal(t, "Tamper", ZoneStatusTamper.String())
	require.Contains(t, AreaMode(42).String(), "Unknown")
}
