package rabbitmq

import (
	"errors"
	"testing"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

type recordingAcker struct {
	acked, nacked, requeued bool
}

func (a *recordingAcker) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *recordingAcker) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

func (a *recordingAcker) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func TestHandleAcksOnSuccess(t *testing.T) {
	acker := &recordingAcker{}
	var got []byte

	handle(amqp.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: []byte(`{"type":"x"}`)}, func(body []byte) error {
		got = body
		return nil
	})

	assert.Equal(t, `{"type":"x"}`, string(got))
	assert.True(t, acker.acked)
	assert.False(t, acker.nacked)
}

func TestHandleDropsFailedMessage(t *testing.T) {
	acker := &recordingAcker{}

	handle(amqp.Delivery{Acknowledger: acker, DeliveryTag: 2}, func([]byte) error {
		return errors.New("smtp down")
	})

	assert.False(t, acker.acked)
	assert.True(t, acker.nacked)
	assert.False(t, acker.requeued)
}

func TestClientWithoutChannel(t *testing.T) {
	c := &Client{}
	assert.Error(t, c.Publish(NewsletterQueue, []byte("{}")))
	assert.Error(t, c.Consume(t.Context(), NewsletterQueue, func([]byte) error { return nil }))
	assert.NoError(t, c.Close())
}
