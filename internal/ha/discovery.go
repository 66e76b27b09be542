// Package ha builds Home Assistant MQTT discovery payloads for meter
// sensors.
package ha

import (
	"encoding/json"
	"fmt"
)

type Device struct {
	Identifiers  []string `json:"identifiers,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Model        string   `json:"model,omitempty"`
	Name         string   `json:"name,omitempty"`
}

type SensorConfig struct {
	Name       string  `json:"name"`
	UniqueID   string  `json:"unique_id"`
	StateTopic string  `json:"state_topic"`
	ValueTpl   string  `json:"value_template,omitempty"`
	UnitOfMeas string  `json:"unit_of_measurement,omitempty"`
	Device     *Device `json:"device,omitempty"`
	QoS        int     `json:"qos,omitempty"`
}

func (c *SensorConfig) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// TopicSensorConfig returns the discovery topic for one sensor of a device.
func TopicSensorConfig(deviceID, name string) string {
	return fmt.Sprintf("homeassistant/sensor/%s/%s/config", deviceID, name)
}

// MeterSensor builds a discovery config for one polled register. The state
// topic carries a JSON object per reading; the template selects the value
// for the given register name.
func MeterSensor(deviceID, model, name, unit string) SensorConfig {
	return SensorConfig{
		Name:       name,
		UniqueID:   deviceID + "_" + name,
		StateTopic: "smh/" + deviceID + "/state",
		ValueTpl:   fmt.Sprintf("{%% if value_json.name == %q %%}{{ value_json.value }}{%% endif %%}", name),
		UnitOfMeas: unit,
		QoS:        1,
		Device: &Device{
			Identifiers:  []string{deviceID},
			Manufacturer: "Eastron",
			Model:        model,
			Name:         deviceID,
		},
	}
}
