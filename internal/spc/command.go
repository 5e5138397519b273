package spc

import "fmt"

// armCommand maps an arming mode to the gateway's command vocabulary. A mode
// outside the four supported values is a caller error and is the one input
// fault surfaced instead of defaulted.
func armCommand(mode AreaMode) (string, error) {
	switch mode {
	case AreaModeUnset:
		return "unset", nil
	case AreaModePartSetA:
		return "set_a", nil
	case AreaModePartSetB:
		return "set_b", nil
	case AreaModeFullSet:
		return "set", nil
	default:
		return "", fmt.Errorf("unsupported area mode: %s", mode)
	}
}
