package notify

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"route-recommendation-service/internal/domain"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	done bool
	err  error
}

func (t *fakeToken) Wait() bool                     { return t.done }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return t.done }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	if t.done {
		close(ch)
	}
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type sent struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	msgs  []sent
	token *fakeToken
}

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	c.msgs = append(c.msgs, sent{topic: topic, qos: qos, payload: payload.([]byte)})
	return c.token
}

func TestMQTTPublisher_OnRoute(t *testing.T) {
	client := &fakeClient{token: &fakeToken{done: true}}
	p := NewMQTTPublisher(client, "")
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	err := p.OnRoute(domain.RouteEstimate{
		Origin: "Centro", Destination: "Sé", DistanceKm: 2.5,
		EstimatedTimeMin: 9, Cost: 1.75, TransportModeName: "Car",
	})
	require.NoError(t, err)

	require.Len(t, client.msgs, 1)
	assert.Equal(t, DefaultTopic, client.msgs[0].topic)
	assert.Equal(t, byte(1), client.msgs[0].qos)

	var msg RouteMessage
	require.NoError(t, json.Unmarshal(client.msgs[0].payload, &msg))
	assert.Equal(t, "Centro", msg.Origin)
	assert.Equal(t, 9, msg.TimeMin)
	assert.Equal(t, fixed, msg.SentAt)
}

func TestMQTTPublisher_Errors(t *testing.T) {
	p := NewMQTTPublisher(&fakeClient{token: &fakeToken{done: false}}, "t")
	assert.ErrorContains(t, p.OnRoute(domain.RouteEstimate{}), "timed out")

	p = NewMQTTPublisher(&fakeClient{token: &fakeToken{done: true, err: errors.New("not connected")}}, "t")
	assert.ErrorContains(t, p.OnRoute(domain.RouteEstimate{}), "not connected")
}

func TestConnect_RequiresBroker(t *testing.T) {
	_, err := Connect("", "id")
	assert.Error(t, err)
}
