package spc

import (
	"context"
	"fmt"
	"sync"
)

// notAvailable replaces actor names the gateway did not report.
const notAvailable = "N/A"

// Area is an arming partition of the alarm system. It is created once during
// LoadParameters and mutated in place by every refresh afterwards.
type Area struct {
	gw   *Gateway
	id   string
	name string

	mu            sync.RWMutex
	mode          AreaMode
	lastSetUser   string
	lastUnsetUser string
	verifiedAlarm bool

	// zones is set once after construction and read-only afterwards.
	zones []*Zone
}

func newArea(gw *Gateway, record AreaRecord) *Area {
	a := &Area{
		gw:   gw,
		id:   record.ID,
		name: record.Name,
	}
	a.apply(record, "")
	return a
}

func (a *Area) ID() string   { return a.id }
func (a *Area) Name() string { return a.name }

// Zones returns the zones belonging to this area, in controller order.
func (a *Area) Zones() []*Zone { return a.zones }

func (a *Area) Mode() AreaMode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *Area) VerifiedAlarm() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.verifiedAlarm
}

// LastChangedBy names the user behind the most recent mode transition. When
// the area is unset the interesting actor is whoever last set it, and the
// other way around, so the answer is derived from the current mode rather
// than stored.
func (a *Area) LastChangedBy() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.mode == AreaModeUnset {
		return a.lastSetUser
	}
	return a.lastUnsetUser
}

// Refresh fetches this area's authoritative state and replaces mode and
// actor attribution as a unit. A failed fetch leaves the area untouched:
// push-driven callers treat that as "nothing to report".
func (a *Area) Refresh(ctx context.Context, siaCode string) {
	data := a.gw.client.Get(ctx, "spc/area/"+a.id)
	if data == nil || len(data.Areas) == 0 {
		return
	}
	a.apply(data.Areas[0], siaCode)
}

func (a *Area) apply(record AreaRecord, siaCode string) {
	a.gw.log.Debug("Update area %s", a.id)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = ParseAreaMode(record.Mode)
	a.verifiedAlarm = siaCode == SIABurglaryVerified
	a.lastSetUser = orNotAvailable(record.LastSetUser)
	a.lastUnsetUser = orNotAvailable(record.LastUnsetUser)
}

func (a *Area) String() string {
	return fmt.Sprintf("%s: %s. Mode: %s, last changed by %s.",
		a.id, a.name, a.Mode(), a.LastChangedBy())
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
