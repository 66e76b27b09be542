package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/tetragramaton/dcm230-go/internal/device"
	"github.com/tetragramaton/dcm230-go/internal/device/dcm230"
	modbusIface "github.com/tetragramaton/dcm230-go/internal/interface/modbus"
	mqttIface "github.com/tetragramaton/dcm230-go/internal/interface/mqtt"
	"github.com/tetragramaton/dcm230-go/internal/register"
)

// MainHandler ties the registry, the engine and both clients together.
//
// The transport is one half-duplex link shared by the poll loop and the
// command callback (paho runs handlers on its own goroutine); mu keeps
// their requests from interleaving on the wire.
type MainHandler struct {
	MQTTClient   mqttIface.Client
	ModbusClient modbusIface.Client
	Registry     *register.Registry
	Engine       *register.Engine

	mu sync.Mutex
}

func NewMainHandler(
	mqttClient mqttIface.Client,
	modbusClient modbusIface.Client,
	registry *register.Registry,
) *MainHandler {
	return &MainHandler{
		MQTTClient:   mqttClient,
		ModbusClient: modbusClient,
		Registry:     registry,
		Engine:       register.NewEngine(modbusClient),
	}
}

// PublishOnce reads every polled register and publishes one state message
// per successful reading. Read failures are logged and skipped; one bad
// register must not starve the rest of the poll cycle.
func (h *MainHandler) PublishOnce(cfg envCfg, now int64) {
	for _, name := range cfg.Poll {
		spec, err := h.Registry.Lookup(name)
		if err != nil {
			slog.Error("lookup", "name", name, "err", err)
			continue
		}
		v, err := h.readValue(spec)
		if err != nil {
			slog.Error("read", "name", name, "err", err)
			continue
		}
		state := SensorState{
			Ts:    now,
			Name:  name,
			Unit:  dcm230.Unit(name),
			Value: v.String(),
		}
		if err := h.publishEvent(cfg, state, "/state", false); err != nil {
			slog.Error("state publish", "name", name, "err", err)
		}
	}
}

// command is the payload accepted on the cmd topic.
type command struct {
	Register string `json:"register"`
	Code     uint16 `json:"code"`
}

// handleCommand dispatches a side-effecting write, e.g.
// {"register":"reset","code":1} to clear max demand.
func (h *MainHandler) handleCommand(payload []byte) error {
	var cmd command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return fmt.Errorf("bad command payload: %w", err)
	}
	spec, err := h.Registry.Lookup(cmd.Register)
	if err != nil {
		return err
	}
	if err := h.invokeCommand(spec, cmd.Code); err != nil {
		return fmt.Errorf("command %q code %d: %w", cmd.Register, cmd.Code, err)
	}
	slog.Info("command dispatched", "register", cmd.Register, "code", cmd.Code)
	return nil
}

func (h *MainHandler) readValue(spec register.RegisterSpec) (register.Value, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Engine.ReadValue(spec)
}

func (h *MainHandler) invokeCommand(spec register.RegisterSpec, code uint16) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Engine.InvokeCommand(spec, code)
}

func (h *MainHandler) publishEvent(cfg envCfg, payload any, path string, retain bool) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	return h.MQTTClient.PublishEvent(mqttIface.Message{
		Topic:   "smh/" + cfg.DeviceID + path,
		Payload: data,
		QoS:     1,
		Retain:  retain,
	})
}

// ProvideRegistry builds the device registry: the builtin DCM230 table,
// optionally overlaid with a YAML map file.
func ProvideRegistry() (*register.Registry, error) {
	specs := dcm230.Specs()
	if path := os.Getenv("REGISTER_MAP_FILE"); path != "" {
		overrides, err := device.LoadMapFile(path)
		if err != nil {
			return nil, err
		}
		specs = device.Merge(specs, overrides)
	}
	return register.NewRegistry(specs)
}
