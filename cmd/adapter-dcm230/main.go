package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/tetragramaton/dcm230-go/internal/device/dcm230"
	"github.com/tetragramaton/dcm230-go/internal/ha"
	mqttIface "github.com/tetragramaton/dcm230-go/internal/interface/mqtt"
	"github.com/tetragramaton/dcm230-go/internal/logging"
)

// Meta announces the device once on startup, retained.
type Meta struct {
	DeviceID string   `json:"device_id"`
	Model    string   `json:"model,omitempty"`
	Area     string   `json:"area,omitempty"`
	Caps     []string `json:"caps"`
}

// SensorState is one published register reading. Value is the exact
// decimal rendering of the decoded register, not a float.
type SensorState struct {
	Ts    int64  `json:"ts"`
	Name  string `json:"name"`
	Unit  string `json:"unit,omitempty"`
	Value string `json:"value"`
}

func main() {
	slog.SetDefault(logging.New(getEnvDefault("LOG_LEVEL", "info"), getEnvDefault("LOG_FORMAT", "json")))

	handler, err := InitMainHandler()
	if err != nil {
		slog.Error("init failed", "err", err)
		os.Exit(1)
	}
	handler.Handle()
}

// Handle runs the adapter: announce meta and discovery, accept commands,
// then poll and publish on a ticker until the process dies.
func (h *MainHandler) Handle() {
	cfg := loadEnv()
	defer h.MQTTClient.Close(250)
	defer func() {
		if err := h.ModbusClient.Close(); err != nil {
			slog.Error("modbus close", "err", err)
		}
	}()

	meta := Meta{
		DeviceID: cfg.DeviceID,
		Model:    cfg.Model,
		Area:     cfg.Area,
		Caps:     cfg.Poll,
	}
	if err := h.publishEvent(cfg, meta, "/meta", true); err != nil {
		slog.Error("meta publish", "err", err)
	}
	h.publishDiscovery(cfg)

	if err := h.MQTTClient.SubscribeToTopic(mqttIface.Subscription{
		Topic: "smh/" + cfg.DeviceID + "/cmd",
		QoS:   1,
		Callback: func(_ pahomqtt.Client, msg pahomqtt.Message) {
			if err := h.handleCommand(msg.Payload()); err != nil {
				slog.Error("command", "err", err)
			}
		},
	}); err != nil {
		slog.Error("command subscribe", "err", err)
	}

	ticker := time.NewTicker(time.Duration(cfg.IntervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		h.PublishOnce(cfg, time.Now().Unix())
	}
}

func (h *MainHandler) publishDiscovery(cfg envCfg) {
	for _, name := range cfg.Poll {
		sensor := ha.MeterSensor(cfg.DeviceID, cfg.Model, name, dcm230.Unit(name))
		payload, err := sensor.Marshal()
		if err != nil {
			slog.Error("discovery marshal", "name", name, "err", err)
			continue
		}
		err = h.MQTTClient.PublishEvent(mqttIface.Message{
			Topic:   ha.TopicSensorConfig(cfg.DeviceID, name),
			Payload: payload,
			QoS:     1,
			Retain:  true,
		})
		if err != nil {
			slog.Error("discovery publish", "name", name, "err", err)
		}
	}
}

type envCfg struct {
	DeviceID    string
	Model       string
	Area        string
	IntervalSec int
	Poll        []string
}

func loadEnv() envCfg {
	cfg := envCfg{
		DeviceID:    getEnvDefault("DEVICE_ID", "dcm230.meter"),
		Model:       getEnvDefault("MODEL", "DCM230"),
		Area:        getEnvDefault("AREA", "lab"),
		IntervalSec: atoiDefault(os.Getenv("INTERVAL_SEC"), 1),
		Poll:        dcm230.Polled,
	}
	if v := os.Getenv("POLL_REGISTERS"); v != "" {
		var poll []string
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				poll = append(poll, name)
			}
		}
		if len(poll) > 0 {
			cfg.Poll = poll
		}
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}
