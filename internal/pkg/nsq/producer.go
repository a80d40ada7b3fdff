package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"

	"github.com/piresc/transferflow/internal/pkg/logger"
)

// Publisher publishes raw messages to a topic. *nsq.Producer satisfies it.
type Publisher interface {
	Publish(topic string, body []byte) error
	Ping() error
	Stop()
}

// Producer publishes JSON messages to nsqd
type Producer struct {
	producer Publisher
}

// NewProducer connects to the nsqd at address
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// NewProducerWith wraps an existing publisher
func NewProducerWith(p Publisher) *Producer {
	return &Producer{producer: p}
}

// Publish marshals message and sends it to topic
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published NSQ message", logger.String("topic", topic))
	return nil
}

// Ping checks the nsqd connection, used by health checks
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
