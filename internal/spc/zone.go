package spc

import (
	"context"
	"fmt"
	"sync"
)

// Zone is a single sensor point. It is created once during LoadParameters
// and mutated in place by every refresh afterwards.
type Zone struct {
	gw   *Gateway
	area *Area
	id   string
	name string

	mu     sync.RWMutex
	input  ZoneInput
	ztype  ZoneType
	status ZoneStatus
}

func newZone(gw *Gateway, area *Area, record ZoneRecord) *Zone {
	z := &Zone{
		gw:   gw,
		area: area,
		id:   record.ID,
		name: record.Name,
	}
	z.apply(record)
	return z
}

func (z *Zone) ID() string   { return z.id }
func (z *Zone) Name() string { return z.name }

// Area returns the arming partition this zone belongs to.
func (z *Zone) Area() *Area { return z.area }

// UniqueID combines the panel serial number with the zone identifier so the
// zone can be correlated across systems.
func (z *Zone) UniqueID() string {
	return fmt.Sprintf("%s-%s", z.gw.SerialNumber(), z.id)
}

func (z *Zone) Input() ZoneInput {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.input
}

func (z *Zone) Type() ZoneType {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.ztype
}

func (z *Zone) Status() ZoneStatus {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.status
}

// Refresh fetches this zone's authoritative state and replaces input, type
// and status as a unit. A failed fetch leaves the zone untouched.
func (z *Zone) Refresh(ctx context.Context, siaCode string) {
	data := z.gw.client.Get(ctx, "spc/zone/"+z.id)
	if data == nil || len(data.Zones) == 0 {
		return
	}
	z.apply(data.Zones[0])
}

func (z *Zone) apply(record ZoneRecord) {
	z.gw.log.Debug("Update zone %s", z.id)
	z.mu.Lock()
	defer z.mu.Unlock()
	z.input = ParseZoneInput(record.Input)
	z.ztype = ParseZoneType(record.Type)
	z.status = ParseZoneStatus(record.Status)
}

func (z *Zone) String() string {
	return fmt.Sprintf("%s: %s (%s). Input: %s, status: %s",
		z.id, z.name, z.Type(), z.Input(), z.Status())
}
