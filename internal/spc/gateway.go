package spc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spcwebgw/spc2mqtt/internal/log"
	"github.com/spcwebgw/spc2mqtt/internal/util"
)

// Entity is a live panel object the gateway keeps synchronized.
type Entity interface {
	ID() string
	Refresh(ctx context.Context, siaCode string)
}

// Callback receives an entity after a push event refreshed it. It may be
// invoked concurrently and out of event-arrival order.
type Callback func(entity Entity)

// Gateway owns the area and zone registry, issues arming commands and
// resolves push events to the entity they affect. The registry is populated
// once by LoadParameters and never repopulated; only the entities' own state
// is mutated afterwards, so lookups need no locking.
type Gateway struct {
	client   *Client
	log      *log.Logger
	callback Callback

	info   PanelInfo
	areas  map[string]*Area
	zones  map[string]*Zone
	loaded bool
}

func NewGateway(client *Client, logger *log.Logger) *Gateway {
	return &Gateway{
		client: client,
		log:    logger,
		areas:  make(map[string]*Area),
		zones:  make(map[string]*Zone),
	}
}

// OnUpdate registers the single observer notified after each resolved push
// event. Must be called before Start.
func (g *Gateway) OnUpdate(cb Callback) {
	g.callback = cb
}

// Info returns the panel metadata fetched during LoadParameters.
func (g *Gateway) Info() PanelInfo { return g.info }

// SerialNumber returns the panel serial number.
func (g *Gateway) SerialNumber() string { return g.info.SerialNumber }

// Areas returns the area registry keyed by area identifier.
func (g *Gateway) Areas() map[string]*Area { return g.areas }

// Zones returns the zone registry keyed by zone identifier.
func (g *Gateway) Zones() map[string]*Zone { return g.zones }

// LoadParameters fetches panel info and the full area and zone lists and
// builds the entity registry. It runs once per gateway lifetime. Controllers
// reporting more than one area are not supported.
func (g *Gateway) LoadParameters(ctx context.Context) error {
	if g.loaded {
		return errors.New("parameters already loaded")
	}

	g.log.Debug("Fetching panel info")
	data := g.client.Get(ctx, "spc/panel")
	if data == nil || data.Panel == nil {
		return errors.New("failed to fetch panel info")
	}
	g.info = *data.Panel

	g.log.Debug("Fetching zones")
	data = g.client.Get(ctx, "spc/zone")
	if data == nil || len(data.Zones) == 0 {
		return errors.New("failed to fetch zones")
	}
	zones := data.Zones

	g.log.Debug("Fetching areas")
	data = g.client.Get(ctx, "spc/area")
	if data == nil || len(data.Areas) == 0 {
		return errors.New("failed to fetch areas")
	}
	areas := data.Areas

	if len(areas) > 1 {
		return fmt.Errorf("only one area is supported, controller reported %d", len(areas))
	}

	for _, record := range areas {
		record.Name = util.Normalize(record.Name)
		area := newArea(g, record)
		for _, zr := range zones {
			if zr.Area != record.ID {
				continue
			}
			zr.Name = util.Normalize(zr.Name)
			zone := newZone(g, area, zr)
			area.zones = append(area.zones, zone)
			g.zones[zone.id] = zone
		}
		g.areas[area.id] = area
	}

	g.loaded = true
	g.log.Info("Loaded %d area(s) and %d zone(s) from panel %s",
		len(g.areas), len(g.zones), g.info.SerialNumber)
	return nil
}

// ChangeMode issues an arming command for the area and then forces a refresh
// so callers observe the controller's authoritative post-command state. The
// command response itself is not trusted as the new state. The only error is
// an unsupported mode; a failed command degrades to "state unchanged".
func (g *Gateway) ChangeMode(ctx context.Context, area *Area, mode AreaMode) error {
	cmd, err := armCommand(mode)
	if err != nil {
		return err
	}

	g.log.Info("Changing area %s mode to %s", area.ID(), mode)
	g.client.Put(ctx, fmt.Sprintf("spc/area/%s/%s", area.ID(), cmd))
	area.Refresh(ctx, "")
	return nil
}

// ChangeModeByID resolves the area identifier and delegates to ChangeMode.
func (g *Gateway) ChangeModeByID(ctx context.Context, areaID string, mode AreaMode) error {
	area, ok := g.areas[areaID]
	if !ok {
		return fmt.Errorf("unknown area %q", areaID)
	}
	return g.ChangeMode(ctx, area, mode)
}

// HandleMessage decodes a raw push-channel message and dispatches it. It is
// the handler given to the push subscription.
func (g *Gateway) HandleMessage(ctx context.Context, message []byte) {
	var event PushEvent
	if err := json.Unmarshal(message, &event); err != nil {
		g.log.Warn("Failed to decode push message: %v", err)
		return
	}
	g.HandleEvent(ctx, event)
}

// HandleEvent resolves a push event to the entity it targets, refreshes that
// entity and notifies the observer exactly once. The refresh-and-notify
// sequence runs in its own goroutine so a slow fetch or observer never
// delays delivery of the next push message; completion order across events
// is therefore not guaranteed.
func (g *Gateway) HandleEvent(ctx context.Context, event PushEvent) {
	code := event.Data.Sia.Code
	address := event.Data.Sia.Address
	g.log.Info("SIA code %s for ID %s", code, address)

	target := ClassifySIA(code)
	siaEventsTotal.WithLabelValues(target.String()).Inc()

	var entity Entity
	switch target {
	case TargetArea:
		if len(g.areas) != 1 {
			// LoadParameters rejects multi-area panels, so reaching this is
			// a programming error.
			panic(fmt.Sprintf("expected exactly 1 area, have %d", len(g.areas)))
		}
		for _, area := range g.areas {
			entity = area
		}
	case TargetZone:
		zone, ok := g.zones[address]
		if !ok {
			g.log.Error("Received event for unregistered ID %s", address)
			return
		}
		entity = zone
	default:
		g.log.Debug("Not interested in SIA code %s", code)
		return
	}

	go func() {
		entity.Refresh(ctx, code)
		if g.callback != nil {
			g.callback(entity)
		}
	}()
}
