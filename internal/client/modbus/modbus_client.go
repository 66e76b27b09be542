package modbus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goburrow/modbus"

	modbusIface "github.com/tetragramaton/dcm230-go/internal/interface/modbus"
	"github.com/tetragramaton/dcm230-go/internal/register"
)

// EnvCfg holds the serial/TCP link settings read from the environment.
type EnvCfg struct {
	Mode string // "rtu" or "tcp"

	// RTU
	Port      string
	Baud      int
	DataBits  int
	Parity    string // "N","E","O"
	StopBits  int
	SlaveID   int
	TimeoutMs int

	// TCP
	TCPAddr string // "192.168.1.10:502"
}

type handler struct {
	api     modbusIface.API
	closeFn func() error
}

// NewHandler connects a goburrow-backed transport using the environment
// configuration and returns it as a word-level client.
func NewHandler() (modbusIface.Client, error) {
	cfg, err := LoadEnvCfg()
	if err != nil {
		return nil, err
	}

	if cfg.Mode == "tcp" {
		th := modbus.NewTCPClientHandler(cfg.TCPAddr)
		th.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
		th.SlaveId = byte(cfg.SlaveID)
		if err := th.Connect(); err != nil {
			return nil, err
		}
		return &handler{
			api:     modbus.NewClient(th),
			closeFn: th.Close,
		}, nil
	}

	rh := modbus.NewRTUClientHandler(cfg.Port)
	rh.BaudRate = cfg.Baud
	rh.DataBits = cfg.DataBits
	rh.Parity = cfg.Parity
	rh.StopBits = cfg.StopBits
	rh.SlaveId = byte(cfg.SlaveID)
	rh.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	if err := rh.Connect(); err != nil {
		return nil, err
	}

	return &handler{
		api:     modbus.NewClient(rh),
		closeFn: rh.Close,
	}, nil
}

// newHandlerWithAPI is the test seam for fake goburrow clients.
func newHandlerWithAPI(api modbusIface.API) *handler {
	return &handler{api: api}
}

// ReadWords reads count consecutive 16-bit words from the given bank and
// converts goburrow's big-endian byte stream into words.
func (h *handler) ReadWords(bank register.Bank, address, count uint16) ([]uint16, error) {
	var res []byte
	var err error
	if bank == register.Holding {
		res, err = h.api.ReadHoldingRegisters(address, count)
	} else {
		res, err = h.api.ReadInputRegisters(address, count)
	}
	if err != nil {
		return nil, err
	}
	if len(res) < int(count)*2 {
		return nil, fmt.Errorf("short response: got %d bytes, want %d", len(res), int(count)*2)
	}
	words := make([]uint16, count)
	for i := range words {
		words[i] = binary.BigEndian.Uint16(res[2*i:])
	}
	return words, nil
}

// WriteWords writes the ordered words as one multiple-register request.
func (h *handler) WriteWords(address uint16, words []uint16) error {
	buf := make([]byte, 2*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint16(buf[2*i:], w)
	}
	_, err := h.api.WriteMultipleRegisters(address, uint16(len(words)), buf)
	return err
}

func (h *handler) Close() error {
	if h.closeFn != nil {
		return h.closeFn()
	}
	return nil
}

// LoadEnvCfg reads link settings from MODBUS_* environment variables.
// RTU mode needs MODBUS_PORT; TCP mode needs MODBUS_TCP_ADDR.
func LoadEnvCfg() (EnvCfg, error) {
	var c EnvCfg

	c.Mode = strings.ToLower(getEnvDefault("MODBUS_MODE", "rtu"))
	if c.Mode != "rtu" && c.Mode != "tcp" {
		return c, errors.New("MODBUS_MODE must be 'rtu' or 'tcp'")
	}

	c.SlaveID, _ = strconv.Atoi(getEnvDefault("MODBUS_SLAVE_ID", "1"))
	c.TimeoutMs, _ = strconv.Atoi(getEnvDefault("MODBUS_TIMEOUT_MS", "500"))

	if c.Mode == "tcp" {
		c.TCPAddr = os.Getenv("MODBUS_TCP_ADDR")
		if c.TCPAddr == "" {
			return c, errors.New("missing MODBUS_TCP_ADDR for tcp mode")
		}
		return c, nil
	}

	c.Port = os.Getenv("MODBUS_PORT")
	if c.Port == "" {
		return c, errors.New("missing MODBUS_PORT for rtu mode")
	}
	c.Baud, _ = strconv.Atoi(getEnvDefault("MODBUS_BAUD", "9600"))
	c.DataBits, _ = strconv.Atoi(getEnvDefault("MODBUS_DATABITS", "8"))
	c.Parity = strings.ToUpper(getEnvDefault("MODBUS_PARITY", "N"))
	c.StopBits, _ = strconv.Atoi(getEnvDefault("MODBUS_STOPBITS", "1"))

	return c, nil
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
