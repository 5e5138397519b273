package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	SPC           SPCConfig           `yaml:"spc"`
	MQTT          MQTTConfig          `yaml:"mqtt"`
	HomeAssistant HomeAssistantConfig `yaml:"homeassistant"`
	Metrics       MetricsConfig       `yaml:"metrics"`
	Log           string              `yaml:"log"`
}

type SPCConfig struct {
	APIURL  string `yaml:"api_url"`
	WSURL   string `yaml:"ws_url"`
	Timeout int    `yaml:"timeout"`
}

type MQTTConfig struct {
	ClientID  string `yaml:"client_id"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Keepalive int    `yaml:"keepalive"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	QOS       int    `yaml:"qos"`
	Retain    bool   `yaml:"retain"`
	Prefix    string `yaml:"prefix"`
	Clean     bool   `yaml:"clean"`
}

type HomeAssistantConfig struct {
	Discovery bool   `yaml:"discovery"`
	Prefix    string `yaml:"prefix"`
}

type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

func LoadConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	if config.SPC.APIURL == "" {
		return nil, fmt.Errorf("spc.api_url is required")
	}
	if config.SPC.WSURL == "" {
		return nil, fmt.Errorf("spc.ws_url is required")
	}

	// Set default values
	if config.SPC.Timeout == 0 {
		config.SPC.Timeout = 10
	}
	if config.MQTT.ClientID == "" {
		config.MQTT.ClientID = "spc2mqtt"
	}
	if config.MQTT.Host == "" {
		config.MQTT.Host = "localhost"
	}
	if config.MQTT.Port == 0 {
		config.MQTT.Port = 1883
	}
	if config.MQTT.Keepalive == 0 {
		config.MQTT.Keepalive = 60
	}
	if config.MQTT.Prefix == "" {
		config.MQTT.Prefix = "spc2mqtt"
	}
	if config.HomeAssistant.Prefix == "" {
		config.HomeAssistant.Prefix = "homeassistant"
	}
	if config.Log == "" {
		config.Log = "info"
	}

	return &config, nil
}
