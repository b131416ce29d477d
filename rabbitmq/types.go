// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type Config struct {
	AMQPURL string
	Queue   string
}

// Client publishes text payloads to the durable messages queue. It satisfies
// messages.Dispatcher.
type Client struct {
	config  Config
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Handler processes one dispatched text payload; a non-nil error leaves the
// delivery to the broker's dead-letter policy.
type Handler func(text string) error

// Consumer drains the messages queue and feeds each payload to its handler.
type Consumer struct {
	config   Config
	conn     *amqp.Connection
	channel  *amqp.Channel
	handler  Handler
	stopChan chan struct{}
}
