// Push channel to signage players. The server publishes; devices subscribe to
// their own command topic and react without polling.
package mqtt

import (
	"encoding/json"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

var client paho.Client

// Command is the envelope every player topic carries.
type Command struct {
	Action  string `json:"action"`
	Payload any    `json:"payload,omitempty"`
}

const (
	ActionRefreshContent = "refresh_content"
	ActionConflictAlert  = "conflict_alert"
	ActionReboot         = "reboot"
)

func deviceTopic(serial string) string {
	return fmt.Sprintf("signage/%s/commands", serial)
}

// Connect dials the broker once at startup. Publishing before Connect (or
// after a failed Connect) is a no-op so the API keeps working without a
// broker.
func Connect(brokerURL, clientID string) error {
	opts := paho.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(paho.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Warn().Err(err).Msg("MQTT connection lost")
	}

	c := paho.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}
	client = c
	return nil
}

func publish(topic string, cmd Command) error {
	if client == nil || !client.IsConnected() {
		log.Debug().Str("topic", topic).Msg("MQTT not connected, dropping command")
		return nil
	}
	payload, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	token := client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to %s: %v", topic, token.Error())
	}
	return nil
}

// PublishToDevice sends a command to one player.
func PublishToDevice(serial string, cmd Command) error {
	return publish(deviceTopic(serial), cmd)
}

// Broadcast sends a command to every player via the shared topic.
func Broadcast(cmd Command) error {
	return publish("signage/all/commands", cmd)
}

// NotifyContentChanged tells a player to re-sync immediately.
func NotifyContentChanged(serial string) {
	if err := PublishToDevice(serial, Command{Action: ActionRefreshContent}); err != nil {
		log.Warn().Err(err).Str("serial", serial).Msg("failed to push content refresh")
	}
}

// NotifyAllContentChanged re-syncs the whole fleet, used when broadcast
// schedules change.
func NotifyAllContentChanged() {
	if err := Broadcast(Command{Action: ActionRefreshContent}); err != nil {
		log.Warn().Err(err).Msg("failed to broadcast content refresh")
	}
}

func Disconnect() {
	if client != nil && client.IsConnected() {
		client.Disconnect(250)
	}
}
