package mqtt

import (
	"fmt"

	"github.com/spcwebgw/spc2mqtt/internal/spc"
	"github.com/spcwebgw/spc2mqtt/internal/util"
)

type Topics struct {
	prefix string
}

func NewTopics(prefix string) *Topics {
	return &Topics{prefix: prefix}
}

func (t *Topics) Status() string {
	return fmt.Sprintf("%s/status", t.prefix)
}

func (t *Topics) Config() string {
	return fmt.Sprintf("%s/config", t.prefix)
}

func (t *Topics) Area(area *spc.Area) string {
	return fmt.Sprintf("%s/area/%s", t.prefix, util.Slugify(area.Name()))
}

func (t *Topics) AreaCommand(area *spc.Area) string {
	return fmt.Sprintf("%s/area/%s/command", t.prefix, util.Slugify(area.Name()))
}

func (t *Topics) Zone(zone *spc.Zone) string {
	return fmt.Sprintf("%s/zone/%s", t.prefix, util.Slugify(zone.Name()))
}
