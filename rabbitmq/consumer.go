// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	"fmt"
	"relay-server/commons"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NewConsumer connects to the broker, declares the durable messages queue and
// prepares a prefetch-1 channel so one payload is processed at a time.
func NewConsumer(config Config, handler Handler) (*Consumer, error) {
	config = config.withDefaults()
	c := &Consumer{config: config, handler: handler, stopChan: make(chan struct{})}

	conn, err := amqp.Dial(config.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	c.conn = conn

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("channel: %w", err)
	}
	c.channel = ch

	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("qos: %w", err)
	}

	queue, err := ch.QueueDeclare(config.Queue, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("queue declare: %w", err)
	}

	commons.Logger.Infof("Queue ready: %s", queue.Name)
	return c, nil
}

func (c *Consumer) Start() error {
	msgs, err := c.channel.Consume(
		c.config.Queue, "", false, false, false, false, nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					commons.Logger.Warn("Message channel closed")
					return
				}
				c.handleMessage(msg)
			case <-c.stopChan:
				commons.Logger.Info("Stop signal received")
				return
			}
		}
	}()
	return nil
}

func (c *Consumer) handleMessage(msg amqp.Delivery) {
	if err := c.handler(string(msg.Body)); err != nil {
		commons.Logger.Errorf("Failed to process message: %v", err)
		// No requeue: redelivery is the broker's dead-letter policy.
		if nackErr := msg.Nack(false, false); nackErr != nil {
			commons.Logger.Errorf("Nack failed: %v", nackErr)
		}
		return
	}
	if err := msg.Ack(false); err != nil {
		commons.Logger.Errorf("Ack failed: %v", err)
	}
}

func (c *Consumer) Stop() {
	close(c.stopChan)
}

func (c *Consumer) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
