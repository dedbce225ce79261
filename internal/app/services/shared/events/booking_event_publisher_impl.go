package events

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type bookingEventPublisher struct {
	channel *amqp091.Channel
	queue   string
	Log     *zap.Logger
}

// NewBookingEventPublisher opens a channel on the broker connection and
// declares the booking events queue so publishes never race the consumer's
// declaration.
func NewBookingEventPublisher(conn *amqp091.Connection, logger *zap.Logger) (contracts.BookingEventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQChannel(err)
	}

	_, err = channel.QueueDeclare(
		constvars.RabbitMQBookingEventsQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQQueueDeclare(err)
	}

	return &bookingEventPublisher{
		channel: channel,
		queue:   constvars.RabbitMQBookingEventsQueue,
		Log:     logger,
	}, nil
}

func (p *bookingEventPublisher) PublishBookingCreated(ctx context.Context, event *contracts.BookingCreatedEvent) error {
	event.Event = constvars.BookingCreatedEventName

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",
		p.queue,
		false,
		false,
		amqp091.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	p.Log.Info("bookingEventPublisher.PublishBookingCreated event published",
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		zap.String(constvars.LoggingProviderKey, event.Provider),
	)
	return nil
}
