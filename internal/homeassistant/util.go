package homeassistant

import (
	"strings"

	"github.com/spcwebgw/spc2mqtt/internal/spc"
)

func getDeviceClass(zone *spc.Zone) string {
	switch zone.Type() {
	case spc.ZoneTypeEntryExit:
		return "door"
	case spc.ZoneTypeFire:
		return "smoke"
	case spc.ZoneTypeTechnical:
		return "problem"
	}

	// Fall back to guessing from the zone name.
	name := strings.ToLower(zone.Name())
	if strings.Contains(name, "pir") {
		return "motion"
	}
	if strings.Contains(name, "door") {
		return "door"
	}
	if strings.Contains(name, "window") {
		return "window"
	}
	if strings.Contains(name, "smoke") || strings.Contains(name, "fire") {
		return "smoke"
	}
	if strings.Contains(name, "gas") {
		return "gas"
	}
	if strings.Contains(name, "water") {
		return "moisture"
	}

	return "motion"
}
