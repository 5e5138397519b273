package spc

import "fmt"

// loadEnum maps a raw wire value onto an enum member. Unrecognized values
// fall back to def instead of failing: one unfamiliar vendor code must never
// abort an entity update.
func loadEnum[T any](table map[string]T, raw string, def T) T {
	if v, ok := table[raw]; ok {
		return v
	}
	return def
}

// AreaMode is the arming state of an area as reported by the gateway.
type AreaMode int

const (
	AreaModeUnknown AreaMode = iota
	AreaModeUnset
	AreaModePartSetA
	AreaModePartSetB
	AreaModeFullSet
)

var areaModes = map[string]AreaMode{
	"0": AreaModeUnset,
	"1": AreaModePartSetA,
	"2": AreaModePartSetB,
	"3": AreaModeFullSet,
}

func ParseAreaMode(raw string) AreaMode {
	return loadEnum(areaModes, raw, AreaModeUnknown)
}

func (m AreaMode) String() string {
	switch m {
	case AreaModeUnset:
		return "Unset"
	case AreaModePartSetA:
		return "Part Set A"
	case AreaModePartSetB:
		return "Part Set B"
	case AreaModeFullSet:
		return "Full Set"
	default:
		return fmt.Sprintf("Unknown AreaMode(%d)", m)
	}
}

// ZoneInput is the electrical state of a zone's input circuit.
type ZoneInput int

const (
	ZoneInputUnknown ZoneInput = iota
	ZoneInputClosed
	ZoneInputOpen
	ZoneInputShort
	ZoneInputDisconnected
	ZoneInputPIRMasked
	ZoneInputDCSubstitution
	ZoneInputSensorMissing
	ZoneInputOffline
)

var zoneInputs = map[string]ZoneInput{
	"0": ZoneInputClosed,
	"1": ZoneInputOpen,
	"2": ZoneInputShort,
	"3": ZoneInputDisconnected,
	"4": ZoneInputPIRMasked,
	"5": ZoneInputDCSubstitution,
	"6": ZoneInputSensorMissing,
	"7": ZoneInputOffline,
}

func ParseZoneInput(raw string) ZoneInput {
	return loadEnum(zoneInputs, raw, ZoneInputUnknown)
}

func (z ZoneInput) String() string {
	switch z {
	case ZoneInputClosed:
		return "Closed"
	case ZoneInputOpen:
		return "Open"
	case ZoneInputShort:
		return "Short"
	case ZoneInputDisconnected:
		return "Disconnected"
	case ZoneInputPIRMasked:
		return "PIR Masked"
	case ZoneInputDCSubstitution:
		return "DC Substitution"
	case ZoneInputSensorMissing:
		return "Sensor Missing"
	case ZoneInputOffline:
		return "Offline"
	default:
		return fmt.Sprintf("Unknown ZoneInput(%d)", z)
	}
}

// ZoneType is the controller's configured purpose for a zone.
type ZoneType int

const (
	ZoneTypeUnknown ZoneType = iota
	ZoneTypeAlarm
	ZoneTypeEntryExit
	ZoneTypeFire
	ZoneTypeTechnical
	ZoneTypeKeyArm
)

var zoneTypes = map[string]ZoneType{
	"1": ZoneTypeAlarm,
	"2": ZoneTypeEntryExit,
	"3": ZoneTypeFire,
	"7": ZoneTypeTechnical,
	"9": ZoneTypeKeyArm,
}

func ParseZoneType(raw string) ZoneType {
	return loadEnum(zoneTypes, raw, ZoneTypeUnknown)
}

func (z ZoneType) String() string {
	switch z {
	case ZoneTypeAlarm:
		return "Alarm"
	case ZoneTypeEntryExit:
		return "Entry/Exit"
	case ZoneTypeFire:
		return "Fire"
	case ZoneTypeTechnical:
		return "Technical"
	case ZoneTypeKeyArm:
		return "Key Arm"
	default:
		return fmt.Sprintf("Unknown ZoneType(%d)", z)
	}
}

// ZoneStatus is the alarm-processing state of a zone.
type ZoneStatus int

const (
	ZoneStatusUnknown ZoneStatus = iota
	ZoneStatusOK
	ZoneStatusInhibit
	ZoneStatusIsolate
	ZoneStatusSoak
	ZoneStatusTamper
	ZoneStatusAlarm
	ZoneStatusTrouble
)

var zoneStatuses = map[string]ZoneStatus{
	"0": ZoneStatusOK,
	"1": ZoneStatusInhibit,
	"2": ZoneStatusIsolate,
	"3": ZoneStatusSoak,
	"4": ZoneStatusTamper,
	"5": ZoneStatusAlarm,
	"6": ZoneStatusTrouble,
}

func ParseZoneStatus(raw string) ZoneStatus {
	return loadEnum(zoneStatuses, raw, ZoneStatusUnknown)
}

func (z ZoneStatus) String() string {
	switch z {
	case ZoneStatusOK:
		return "OK"
	case ZoneStatusInhibit:
		return "Inhibit"
	case ZoneStatusIsolate:
		return "Isolate"
	case ZoneStatusSoak:
		return "Soak"
	case ZoneStatusTamper:
		return "Tamper"
	case ZoneStatusAlarm:
		return "Alarm"
	case ZoneStatusTrouble:
		return "Trouble"
	default:
		return fmt.Sprintf("Unknown ZoneStatus(%d)", z)
	}
}
