// Package events publishes order notifications for the staff back office.
// The browser front end used to get these over a realtime channel; here any
// interested consumer (kitchen display, dashboard feed) binds to the topic
// exchange instead.
package events

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange         = "warung.events"
	OrderCreatedRoutingKey = "order.created.v1"
	OrderStatusRoutingKey  = "order.status.v1"
)

func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

func declareEventsExchange(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
}
