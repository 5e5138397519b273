package spc

// SIABurglaryVerified marks a burglary alarm confirmed by a second
// independent signal. Area refreshes driven by it set the verified-alarm
// flag.
const SIABurglaryVerified = "BV"

// Target is the entity class a SIA event code refers to.
type Target int

const (
	TargetNone Target = iota
	TargetArea
	TargetZone
)

// areaSIACodes are the event codes that change area state.
var areaSIACodes = map[string]bool{
	"CG": true, // close area
	"OG": true, // open area
	"BV": true, // burglary verified
	"CL": true, // closing report, sent at full set
	"NL": true, // perimeter armed, sent at part set
	"OP": true, // opening report, sent during unset
	// ZG (user accessing end) stands in for NL/OP: unsetting from a keyfob
	// or keypad does not emit either report, so the user-access code is the
	// only signal that the mode changed.
	"ZG": true,
}

// zoneSIACodes are the event codes that change zone state.
var zoneSIACodes = map[string]bool{
	"ZO": true, // zone open
	"ZC": true, // zone close
	"ZX": true, // zone short
	"ZD": true, // zone disconnected
	"ZM": true, // zone masked
	"BA": true, // burglary alarm
	"BB": true, // burglary bypass
	"BU": true, // burglary unbypass
	"BR": true, // burglary restoral
	"BC": true, // burglary cancel
}

// ClassifySIA resolves an event code to the entity class it targets. The
// code tables are closed: anything outside them is TargetNone and the event
// is dropped, never treated as an error.
func ClassifySIA(code string) Target {
	switch {
	case areaSIACodes[code]:
		return TargetArea
	case zoneSIACodes[code]:
		return TargetZone
	default:
		return TargetNone
	}
}

func (t Target) String() string {
	switch t {
	case TargetArea:
		return "area"
	case TargetZone:
		return "zone"
	default:
		return "none"
	}
}
