package config

import (
	"fmt"
	"net"
	"strconv"
	"sync"

	"sargalayam/utils"

	"github.com/segmentio/kafka-go"
)

const resultsFeedTopic = "sargalayam-results-feed"

var (
	feedWriter *kafka.Writer
	onceFeed   sync.Once
	feedErr    error
)

func createResultsFeedTopic() error {
	broker := Env().KafkaBroker
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER environment variable not set")
	}

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             resultsFeedTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 30 days retention, one festival edition
			{
				ConfigName:  "retention.ms",
				ConfigValue: "2592000000",
			},
		},
	}

	return controllerConn.CreateTopics(topicConfig)
}

// ResultsFeedWriter returns the shared writer for the results feed topic.
// Fails once and stays failed when no broker is configured.
func ResultsFeedWriter() (*kafka.Writer, error) {
	onceFeed.Do(func() {
		broker := Env().KafkaBroker
		if broker == "" {
			feedErr = fmt.Errorf("KAFKA_BROKER environment variable not set")
			return
		}
		if err := createResultsFeedTopic(); err != nil {
			feedErr = err
			return
		}
		feedWriter = kafka.NewWriter(kafka.WriterConfig{
			Brokers: []string{broker},
			Topic:   resultsFeedTopic,
		})
	})
	return feedWriter, feedErr
}
