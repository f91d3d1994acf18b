// Package events publishes order lifecycle events to Kafka. Publishing is
// best effort; a broker outage never blocks or fails an order.
package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Shopify/sarama"

	"github.com/NAdun-bit/rasa-storefront-api/models"
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a synchronous producer to the given brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &Publisher{producer: producer, topic: topic}, nil
}

// OrderSubmitted emits the order to the configured topic. The send happens
// off the caller's goroutine so a degraded broker cannot slow down order
// placement; errors are logged and swallowed.
func (p *Publisher) OrderSubmitted(order models.SubmittedOrder) {
	if p == nil || p.producer == nil {
		return
	}

	event := map[string]interface{}{
		"orderId":       order.OrderID,
		"backendId":     order.BackendID,
		"userId":        order.UserID,
		"total":         order.Total,
		"orderType":     order.OrderType,
		"paymentMethod": order.PaymentMethod,
		"timestamp":     time.Now().Unix(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to encode order event: %v", err)
		return
	}

	go func() {
		_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(order.OrderID),
			Value: sarama.StringEncoder(data),
		})
		if err != nil {
			log.Printf("failed to publish order event %s: %v", order.OrderID, err)
		}
	}()
}

func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
