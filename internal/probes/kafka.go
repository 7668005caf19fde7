package probes

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
)

const (
	kafkaService = "Kafka"
	kafkaClient  = "go-kafka"

	// kafkaTopicSettle gives the controller time to propagate a new topic.
	kafkaTopicSettle = 500 * time.Millisecond
	kafkaReadTimeout = 10 * time.Second
)

// Kafka checks a Kafka broker: it creates a topic through the controller,
// produces one message and consumes it back.
func Kafka(env config.Env) checker.Check {
	host := config.String(env, "KAFKA_HOST", "kafka")
	port := config.Port(env, "KAFKA_PORT", 29092)

	return checker.Check{
		Service: kafkaService,
		Client:  kafkaClient,
		Gate: checker.Gate{
			Flag:           "ENABLE_KAFKA",
			DefaultEnabled: false,
			Host:           host,
			Port:           port,
		},
		Probe: func(ctx context.Context) (string, error) {
			broker := hostPort(host, port)
			topic := healthName(uuid.New())

			if err := createTopic(ctx, broker, topic); err != nil {
				return "", err
			}

			select {
			case <-time.After(kafkaTopicSettle):
			case <-ctx.Done():
				return "", ctx.Err()
			}

			payload := uuid.New().String()
			if err := produce(ctx, broker, topic, payload); err != nil {
				return "", err
			}

			got, err := consumeFirst(ctx, broker, topic)
			if err != nil {
				return "", err
			}
			if got != payload {
				return "", fmt.Errorf("unexpected payload: got %s, want %s", got, payload)
			}

			return fmt.Sprintf("Produced and consumed message %s on topic %s", payload, topic), nil
		},
	}
}

func createTopic(ctx context.Context, broker, topic string) error {
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return fmt.Errorf("dialing broker %s: %w", broker, err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("finding controller: %w", err)
	}

	addr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	controllerConn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dialing controller %s: %w", addr, err)
	}
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		return fmt.Errorf("creating topic %s: %w", topic, err)
	}
	return nil
}

func produce(ctx context.Context, broker, topic, payload string) error {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}
	defer writer.Close()

	err := writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(kafkaClient),
		Value: []byte(payload),
	})
	if err != nil {
		return fmt.Errorf("producing to %s: %w", topic, err)
	}
	return nil
}

func consumeFirst(ctx context.Context, broker, topic string) (string, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     topic,
		Partition: 0,
		MaxBytes:  1 << 20,
	})
	defer reader.Close()

	if err := reader.SetOffset(kafka.FirstOffset); err != nil {
		return "", fmt.Errorf("seeking %s: %w", topic, err)
	}

	readCtx, cancel := context.WithTimeout(ctx, kafkaReadTimeout)
	defer cancel()

	msg, err := reader.ReadMessage(readCtx)
	if err != nil {
		return "", fmt.Errorf("consuming from %s: %w", topic, err)
	}
	return string(msg.Value), nil
}
