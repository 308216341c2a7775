package kafka

import (
	"context"
	"encoding/json"

	"marketplace/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ProducerAPI is the settlement fan-out surface used by the webhook path.
type ProducerAPI interface {
	SendPaymentEvent(event models.PaymentEvent) error
}

type PaymentEventProducer struct {
	writer *kafka.Writer
	topic  string
	logger *zap.Logger
}

func NewPaymentEventProducer(brokers []string, topic string, logger *zap.Logger) *PaymentEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	logger.Info("Kafka producer initialized",
		zap.String("topic", topic),
		zap.Strings("brokers", brokers),
	)
	return &PaymentEventProducer{writer: w, topic: topic, logger: logger}
}

func (p *PaymentEventProducer) SendPaymentEvent(event models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	}
	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		p.logger.Error("Failed to send payment event",
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info("Sent payment event",
		zap.String("type", event.Type),
		zap.String("order_id", event.OrderID),
	)
	return nil
}

func (p *PaymentEventProducer) Close() {
	_ = p.writer.Close()
	p.logger.Info("Kafka producer closed")
}
