package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	got []Event
}

func (r *recorder) Notify(_ context.Context, e Event) { r.got = append(r.got, e) }

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	exchanges []string
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchanges = append(f.exchanges, exchange)
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestNew_MarshalsPayload(t *testing.T) {
	e, err := New("order.created", map[string]int{"id": 7})
	require.NoError(t, err)

	assert.Equal(t, "order.created", e.Type)
	assert.JSONEq(t, `{"id":7}`, string(e.Payload))
	assert.False(t, e.OccurredAt.IsZero())
	assert.NotEqual(t, e.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestNew_UnmarshalablePayload(t *testing.T) {
	_, err := New("order.created", make(chan int))
	assert.Error(t, err)
}

func TestMulti_FansOutAndSkipsNil(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, nil, b}

	Emit(context.Background(), m, "bill.generated", struct{}{})

	require.Len(t, a.got, 1)
	require.Len(t, b.got, 1)
	assert.Equal(t, a.got[0].ID, b.got[0].ID)
}

func TestEmit_NilNotifier(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, "order.created", struct{}{})
	})
}

func TestAMQPPublisher_PublishesPersistentJSON(t *testing.T) {
	ch := &fakeChannel{}
	p := newAMQPPublisher(ch, DefaultExchange)

	e, err := New("order.status_changed", map[string]string{"status": "Ready"})
	require.NoError(t, err)
	require.NoError(t, p.Publish(context.Background(), e))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, DefaultExchange, ch.exchanges[0])
	assert.Equal(t, "order.status_changed", ch.keys[0])
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, e.ID.String(), msg.MessageId)

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, e.ID, decoded.ID)
	assert.JSONEq(t, `{"status":"Ready"}`, string(decoded.Payload))
}

func TestAMQPPublisher_NotifySwallowsError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := newAMQPPublisher(ch, DefaultExchange)

	e, err := New("order.created", struct{}{})
	require.NoError(t, err)

	assert.Error(t, p.Publish(context.Background(), e))
	assert.NotPanics(t, func() { p.Notify(context.Background(), e) })
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newAMQPPublisher(ch, DefaultExchange)
	p.Close()
	assert.True(t, ch.closed)
}
