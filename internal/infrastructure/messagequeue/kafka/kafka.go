package kafka

import (
	"context"

	"github.com/kamronbek003/sellerProject/config"
	"github.com/segmentio/kafka-go"
)

// Producer writes catalog events to a single topic partition. It satisfies
// service.EventPublisher.
type Producer struct {
	conn *kafka.Conn
}

func CreateKafkaProducer(config *config.Config) (*Producer, error) {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, err
	}

	return &Producer{conn: conn}, nil
}

func (p *Producer) Publish(msg []byte) error {
	_, err := p.conn.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

func (p *Producer) Close() error {
	return p.conn.Close()
}
