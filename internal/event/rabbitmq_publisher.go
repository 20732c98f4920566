package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingKeyLoanCreated     = "loan.created"
	routingKeyLoanReturned    = "loan.returned"
	routingKeyLoanOverdue     = "loan.overdue"
	routingKeyCustomerCreated = "customer.created"
	routingKeyCustomerUpdated = "customer.updated"
	publisherAppID            = "library-server"
)

type RabbitMQEventPublisher struct {
	conn         *amqp.Connection
	exchangeName string
	logger       *slog.Logger
}

type EventPublisher interface {
	PublishLoanCreated(ctx context.Context, event LoanCreatedEvent) error
	PublishLoanReturned(ctx context.Context, event LoanReturnedEvent) error
	PublishLoanOverdue(ctx context.Context, event LoanOverdueEvent) error
	PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error
	PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error
}

type LoanEventPayload struct {
	LoanID       int64     `json:"loanId"`
	CustomerID   int64     `json:"customerId"`
	ItemID       int64     `json:"itemId"`
	LoanedAt     time.Time `json:"loanedAt"`
	DurationDays int       `json:"durationDays"`
	DueDate      time.Time `json:"dueDate"`
}

type CustomerEventPayload struct {
	CustomerID int64  `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	AddressID  *int64 `json:"addressId,omitempty"`
}

type LoanCreatedEvent struct {
	Timestamp time.Time        `json:"timestamp"`
	Payload   LoanEventPayload `json:"payload"`
}

type LoanReturnedEvent struct {
	Timestamp time.Time        `json:"timestamp"`
	Payload   LoanEventPayload `json:"payload"`
}

type LoanOverdueEvent struct {
	Timestamp   time.Time        `json:"timestamp"`
	DaysOverdue int              `json:"daysOverdue"`
	LateFee     string           `json:"lateFee"`
	Payload     LoanEventPayload `json:"payload"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

func NewRabbitMQEventPublisher(conn *amqp.Connection, exchangeName string, logger *slog.Logger) (EventPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("RabbitMQ connection cannot be nil")
	}
	if exchangeName == "" {
		return nil, fmt.Errorf("RabbitMQ exchange name cannot be empty")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	tempCh, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open temporary channel for exchange declaration: %w", err)
	}
	defer tempCh.Close()

	err = tempCh.ExchangeDeclare(
		exchangeName,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchangeName, err)
	}
	logger.Info("Ensured RabbitMQ exchange exists", "exchange", exchangeName, "type", amqp.ExchangeTopic)

	return &RabbitMQEventPublisher{
		conn:         conn,
		exchangeName: exchangeName,
		logger:       logger.With("component", "RabbitMQEventPublisher", "exchange", exchangeName),
	}, nil
}

func (p *RabbitMQEventPublisher) publish(ctx context.Context, routingKey string, payload interface{}) error {
	logCtx := p.logger.With(slog.String("routingKey", routingKey))

	channel, err := p.conn.Channel()
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to open RabbitMQ channel", slog.Any("error", err))
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer channel.Close()

	body, err := json.Marshal(payload)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to marshal event payload to JSON", slog.Any("error", err))
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	logCtx.DebugContext(ctx, "Publishing message", "bodySize", len(body))

	err = channel.PublishWithContext(
		ctx,
		p.exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			MessageId:    uuid.NewString(),
			Body:         body,
			AppId:        publisherAppID,
		},
	)

	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to publish message to RabbitMQ", slog.Any("error", err))
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logCtx.InfoContext(ctx, "Successfully published message")
	return nil
}

func (p *RabbitMQEventPublisher) PublishLoanCreated(ctx context.Context, event LoanCreatedEvent) error {
	return p.publish(ctx, routingKeyLoanCreated, event)
}

func (p *RabbitMQEventPublisher) PublishLoanReturned(ctx context.Context, event LoanReturnedEvent) error {
	return p.publish(ctx, routingKeyLoanReturned, event)
}

func (p *RabbitMQEventPublisher) PublishLoanOverdue(ctx context.Context, event LoanOverdueEvent) error {
	return p.publish(ctx, routingKeyLoanOverdue, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	return p.publish(ctx, routingKeyCustomerCreated, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error {
	return p.publish(ctx, routingKeyCustomerUpdated, event)
}
