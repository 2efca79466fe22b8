package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lucaspalermo/defesapix/config"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/lucaspalermo/defesapix/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type DLQPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type Handler func(ctx context.Context, topic string, value []byte) error

type KafkaConsumer struct {
	Readers      []MessageReader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig
	wg           sync.WaitGroup
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]MessageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  retryConfig,
	}
}

// Listen starts one goroutine per reader and returns. The goroutines exit
// when ctx is cancelled; Wait blocks until they have.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r MessageReader) {
			defer c.wg.Done()
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						return
					}
					logrus.Errorf("Kafka error: %s", err.Error())
					continue
				}
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

func (c *KafkaConsumer) Wait() {
	c.wg.Wait()
}

func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	log := logrus.WithFields(logrus.Fields{"topic": msg.Topic, "key": string(msg.Key)})

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}

		backoff := publisher.Backoff(c.RetryConfig, attempt)
		log.Warnf("handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	log.Errorf("message failed after %d retries", c.RetryConfig.MaxAttempts)
	if c.DLQPublisher != nil {
		dlqMessage := models.DLQMessage{
			OriginalTopic: msg.Topic,
			Key:           string(msg.Key),
			Value:         string(msg.Value),
			Timestamp:     time.Now().UTC(),
			Attempts:      c.RetryConfig.MaxAttempts,
		}
		if err := c.DLQPublisher.Publish(ctx, models.ChargesDLQTopic, dlqMessage); err != nil {
			log.Errorf("failed to send message to DLQ: %v", err)
		} else {
			log.Info("message sent to DLQ")
		}
	}
}
