package mqtt

import mqtt "github.com/eclipse/paho.mqtt.golang"

// Message is one outbound publication. Meter states go out at QoS 1,
// unretained; meta and discovery payloads are retained.
type Message struct {
	Topic   string
	Payload []byte
	QoS     byte
	Retain  bool
}

// Subscription registers a handler for an inbound topic, e.g. the
// device's command topic.
type Subscription struct {
	Topic    string
	QoS      byte
	Callback mqtt.MessageHandler
}

// API is the slice of the paho client surface the adapter consumes.
type API interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Disconnect(quiesce uint)
	IsConnectionOpen() bool
}

// Client adds blocking publish/subscribe helpers and a lifecycle on top
// of the raw paho surface.
type Client interface {
	API
	PublishEvent(message Message) error
	SubscribeToTopic(subscription Subscription) error
	Close(quiesce uint) error
}
