// Package notify forwards published routes to an MQTT broker.
package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"route-recommendation-service/internal/domain"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const DefaultTopic = "routes/recommended"

// Publisher is the part of mqtt.Client the observer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// RouteMessage is the JSON payload sent for each route.
type RouteMessage struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Mode        string    `json:"mode"`
	DistanceKm  float64   `json:"distance_km"`
	TimeMin     int       `json:"time_min"`
	Cost        float64   `json:"cost"`
	CO2Kg       float64   `json:"co2_kg"`
	SentAt      time.Time `json:"sent_at"`
}

// MQTTPublisher is an event observer publishing route summaries.
type MQTTPublisher struct {
	client  Publisher
	topic   string
	qos     byte
	timeout time.Duration
	now     func() time.Time
}

func NewMQTTPublisher(client Publisher, topic string) *MQTTPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &MQTTPublisher{client: client, topic: topic, qos: 1, timeout: 5 * time.Second, now: time.Now}
}

func (p *MQTTPublisher) OnRoute(r domain.RouteEstimate) error {
	data, err := json.Marshal(RouteMessage{
		Origin:      r.Origin,
		Destination: r.Destination,
		Mode:        r.TransportModeName,
		DistanceKm:  r.DistanceKm,
		TimeMin:     r.EstimatedTimeMin,
		Cost:        r.Cost,
		CO2Kg:       r.CO2Kg,
		SentAt:      p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("mqtt publish: marshal route: %w", err)
	}

	token := p.client.Publish(p.topic, p.qos, false, data)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("mqtt publish to %s: timed out after %s", p.topic, p.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish to %s: %w", p.topic, err)
	}
	return nil
}

// Connect dials the broker and returns a connected client.
func Connect(brokerURL, clientID string) (mqtt.Client, error) {
	if brokerURL == "" {
		return nil, errors.New("mqtt connect: broker url is empty")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("mqtt connection lost broker=%s err=%v", brokerURL, err)
	})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(15 * time.Second) {
		return nil, fmt.Errorf("mqtt connect %s: timed out", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", brokerURL, err)
	}

	log.Printf("mqtt connected broker=%s client_id=%s", brokerURL, clientID)
	return client, nil
}
