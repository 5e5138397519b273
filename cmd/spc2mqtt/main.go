package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spcwebgw/spc2mqtt/internal/config"
	"github.com/spcwebgw/spc2mqtt/internal/homeassistant"
	"github.com/spcwebgw/spc2mqtt/internal/log"
	"github.com/spcwebgw/spc2mqtt/internal/mqtt"
	"github.com/spcwebgw/spc2mqtt/internal/spc"
	"github.com/spcwebgw/spc2mqtt/internal/ws"
)

func main() {
	configFile := flag.String("config", "config.yml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	logger := log.NewLogger(cfg.Log)

	// Create SPC client and gateway
	client := spc.NewClient(cfg.SPC.APIURL, time.Duration(cfg.SPC.Timeout)*time.Second, logger)
	gateway := spc.NewGateway(client, logger)

	// Create MQTT bridge and register it as the gateway's observer
	mqttClient := mqtt.NewMQTT(&cfg.MQTT, gateway, logger)
	gateway.OnUpdate(mqttClient.HandleUpdate)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load areas and zones from the panel
	if err := gateway.LoadParameters(ctx); err != nil {
		logger.Error("Failed to load panel parameters: %v", err)
		os.Exit(1)
	}

	// Connect to MQTT broker
	if err := mqttClient.Connect(); err != nil {
		logger.Error("Failed to connect to MQTT broker: %v", err)
		os.Exit(1)
	}

	// Publish Home Assistant discovery config if enabled
	if cfg.HomeAssistant.Discovery {
		ha := homeassistant.New(&cfg.HomeAssistant, mqttClient, gateway, logger)
		ha.Start()
	}

	// Expose Prometheus metrics if configured
	if cfg.Metrics.Listen != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("Serving metrics on %s", cfg.Metrics.Listen)
			if err := http.ListenAndServe(cfg.Metrics.Listen, mux); err != nil {
				logger.Error("Metrics listener failed: %v", err)
			}
		}()
	}

	// Start listening for push events
	wsClient := ws.New(cfg.SPC.WSURL, gateway.HandleMessage, logger)
	wsClient.Start(ctx)

	// Wait for termination signal
	<-ctx.Done()

	// Graceful shutdown
	logger.Info("Shutting down...")
	<-wsClient.Done()
	mqttClient.Close()
}
