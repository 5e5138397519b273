package homeassistant

import (
	"fmt"

	"github.com/spcwebgw/spc2mqtt/internal/config"
	"github.com/spcwebgw/spc2mqtt/internal/log"
	"github.com/spcwebgw/spc2mqtt/internal/mqtt"
	"github.com/spcwebgw/spc2mqtt/internal/spc"
	"github.com/spcwebgw/spc2mqtt/internal/util"
)

type HomeAssistant struct {
	config  *config.HomeAssistantConfig
	mqtt    mqtt.MQTTClient
	gateway *spc.Gateway
	log     *log.Logger
}

func New(cfg *config.HomeAssistantConfig, mqttClient mqtt.MQTTClient, gw *spc.Gateway, logger *log.Logger) *HomeAssistant {
	return &HomeAssistant{
		config:  cfg,
		mqtt:    mqttClient,
		gateway: gw,
		log:     logger,
	}
}

func (ha *HomeAssistant) Start() {
	ha.log.Info("Starting Home Assistant integration")
	ha.publishPanelConfig()

	for _, area := range ha.gateway.Areas() {
		ha.publishAreaConfig(area)
		for _, zone := range area.Zones() {
			ha.publishZoneConfig(zone)
		}
	}
}

func (ha *HomeAssistant) publishPanelConfig() {
	info := ha.gateway.Info()
	config := map[string]interface{}{
		"name":         fmt.Sprintf("SPC %s", info.Model),
		"identifiers":  []string{info.SerialNumber},
		"manufacturer": "Vanderbilt",
		"model":        info.Model,
		"sw_version":   info.Version,
	}

	ha.publishConfig("binary_sensor", "panel", "connectivity", config)
}

func (ha *HomeAssistant) publishAreaConfig(area *spc.Area) {
	config := map[string]interface{}{
		"name":              area.Name(),
		"unique_id":         fmt.Sprintf("%s_area_%s", ha.mqtt.GetPrefix(), util.Slugify(area.Name())),
		"state_topic":       ha.mqtt.Topics().Area(area),
		"command_topic":     ha.mqtt.Topics().AreaCommand(area),
		"payload_disarm":    "unset",
		"payload_arm_home":  "part_set_a",
		"payload_arm_night": "part_set_b",
		"payload_arm_away":  "full_set",
		"value_template":    "{{ value_json.mode }}",
	}

	ha.publishConfig("alarm_control_panel", area.ID(), "", config)
}

func (ha *HomeAssistant) publishZoneConfig(zone *spc.Zone) {
	config := map[string]interface{}{
		"name":           zone.Name(),
		"unique_id":      fmt.Sprintf("%s_zone_%s", ha.mqtt.GetPrefix(), util.Slugify(zone.Name())),
		"state_topic":    ha.mqtt.Topics().Zone(zone),
		"device_class":   getDeviceClass(zone),
		"value_template": "{{ value_json.input }}",
		"payload_on":     "Open",
		"payload_off":    "Closed",
	}

	ha.publishConfig("binary_sensor", zone.ID(), "", config)
}

func (ha *HomeAssistant) publishConfig(component, objectID, deviceClass string, config map[string]interface{}) {
	topic := fmt.Sprintf("%s/%s/%s/%s/config", ha.config.Prefix, component, ha.mqtt.GetPrefix(), objectID)

	if deviceClass != "" {
		config["device_class"] = deviceClass
	}

	ha.mqtt.Publish(topic, config, true)
}
