package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/spcwebgw/spc2mqtt/internal/config"
	"github.com/spcwebgw/spc2mqtt/internal/log"
	"github.com/spcwebgw/spc2mqtt/internal/spc"
)

const (
	offlinePayload = "offline"
	onlinePayload  = "online"
)

const commandTimeout = 30 * time.Second

type MQTT struct {
	config  *config.MQTTConfig
	gateway *spc.Gateway
	log     *log.Logger
	client  mqtt.Client
	topics  *Topics
}

func NewMQTT(cfg *config.MQTTConfig, gw *spc.Gateway, logger *log.Logger) *MQTT {
	return &MQTT{
		config:  cfg,
		gateway: gw,
		log:     logger,
		topics:  NewTopics(cfg.Prefix),
	}
}

func (m *MQTT) Connect() error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", m.config.Host, m.config.Port))
	opts.SetClientID(m.config.ClientID)
	opts.SetUsername(m.config.Username)
	opts.SetPassword(m.config.Password)
	opts.SetCleanSession(m.config.Clean)
	opts.SetKeepAlive(time.Duration(m.config.Keepalive) * time.Second)
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(m.onConnect)
	opts.SetConnectionLostHandler(m.onDisconnect)

	opts.SetWill(m.topics.Status(), offlinePayload, byte(m.config.QOS), m.config.Retain)

	m.client = mqtt.NewClient(opts)

	if token := m.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}

	m.log.Info("Connected to MQTT broker: %s:%d", m.config.Host, m.config.Port)
	return nil
}

func (m *MQTT) onConnect(client mqtt.Client) {
	m.log.Info("MQTT connection established")
	m.publish(m.topics.Status(), onlinePayload, true)
	m.publishPanelInfo()
	m.subscribeCommands()
	m.publishAll()
}

func (m *MQTT) onDisconnect(client mqtt.Client, err error) {
	m.log.Error("MQTT connection lost: %v", err)
}

func (m *MQTT) subscribeCommands() {
	for _, area := range m.gateway.Areas() {
		topic := m.topics.AreaCommand(area)
		token := m.client.Subscribe(topic, byte(m.config.QOS), m.handleMessage)
		if token.Wait() && token.Error() != nil {
			m.log.Error("Failed to subscribe to topic %s: %v", topic, token.Error())
		} else {
			m.log.Debug("Subscribed to topic: %s", topic)
		}
	}
}

func (m *MQTT) handleMessage(client mqtt.Client, msg mqtt.Message) {
	topic := msg.Topic()
	payload := string(msg.Payload())

	m.log.Debug("Received message on topic %s: %s", topic, payload)

	for _, area := range m.gateway.Areas() {
		if topic == m.topics.AreaCommand(area) {
			m.handleAreaCommand(area, payload)
			return
		}
	}
	m.log.Warn("Received message on unknown topic: %s", topic)
}

func (m *MQTT) handleAreaCommand(area *spc.Area, command string) {
	var mode spc.AreaMode
	switch command {
	case "unset":
		mode = spc.AreaModeUnset
	case "part_set_a":
		mode = spc.AreaModePartSetA
	case "part_set_b":
		mode = spc.AreaModePartSetB
	case "full_set":
		mode = spc.AreaModeFullSet
	default:
		m.log.Warn("Unknown area command: %s", command)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := m.gateway.ChangeMode(ctx, area, mode); err != nil {
		m.log.Error("Failed to change mode of area %s: %v", area.ID(), err)
		return
	}
	m.PublishAreaStatus(area)
}

// HandleUpdate is the gateway's observer callback: it republishes whichever
// entity a push event refreshed.
func (m *MQTT) HandleUpdate(entity spc.Entity) {
	switch e := entity.(type) {
	case *spc.Area:
		m.PublishAreaStatus(e)
	case *spc.Zone:
		m.PublishZoneStatus(e)
	default:
		m.log.Warn("Update for unexpected entity %s", entity.ID())
	}
}

func (m *MQTT) publishPanelInfo() {
	info := m.gateway.Info()
	payload := map[string]interface{}{
		"serial_number": info.SerialNumber,
		"model":         info.Model,
		"version":       info.Version,
	}
	m.publish(m.topics.Config(), payload, true)
}

func (m *MQTT) publishAll() {
	for _, area := range m.gateway.Areas() {
		m.PublishAreaStatus(area)
		for _, zone := range area.Zones() {
			m.PublishZoneStatus(zone)
		}
	}
}

func (m *MQTT) PublishAreaStatus(area *spc.Area) {
	payload := map[string]interface{}{
		"id":              area.ID(),
		"name":            area.Name(),
		"mode":            area.Mode().String(),
		"last_changed_by": area.LastChangedBy(),
		"verified_alarm":  area.VerifiedAlarm(),
	}
	m.publish(m.topics.Area(area), payload, true)
}

func (m *MQTT) PublishZoneStatus(zone *spc.Zone) {
	payload := map[string]interface{}{
		"id":        zone.ID(),
		"unique_id": zone.UniqueID(),
		"name":      zone.Name(),
		"area":      zone.Area().Name(),
		"type":      zone.Type().String(),
		"input":     zone.Input().String(),
		"status":    zone.Status().String(),
	}
	m.publish(m.topics.Zone(zone), payload, true)
}

// GetPrefix returns the configured topic prefix.
func (m *MQTT) GetPrefix() string {
	return m.config.Prefix
}

// Topics returns the topic builder.
func (m *MQTT) Topics() *Topics {
	return m.topics
}

// Publish sends an already-serializable payload to a topic.
func (m *MQTT) Publish(topic string, payload interface{}, retain bool) {
	m.publish(topic, payload, retain)
}

func (m *MQTT) publish(topic string, message interface{}, retain bool) {
	payload, err := json.Marshal(message)
	if err != nil {
		m.log.Error("Failed to marshal message for topic %s: %v", topic, err)
		return
	}

	token := m.client.Publish(topic, byte(m.config.QOS), retain, payload)
	if token.Wait() && token.Error() != nil {
		m.log.Error("Failed to publish message to topic %s: %v", topic, token.Error())
	} else {
		m.log.Debug("Published message to topic: %s", topic)
	}
}

func (m *MQTT) Close() {
	if m.client != nil && m.client.IsConnected() {
		m.publish(m.topics.Status(), offlinePayload, true)
		m.client.Disconnect(250)
	}
}
