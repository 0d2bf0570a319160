package mq

import (
	"context"
	"encoding/json"
	"time"

	"TechGuideAI/app/services/guide/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishRecommendationEvent sends the recommendation event to Kafka.
func PublishRecommendationEvent(sc *svc.ServiceContext, evt RecommendationEvent) error {
	if len(sc.Config.KafkaConf.Broker) == 0 || sc.Config.KafkaConf.RecommendationTopic == "" {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(sc.Config.KafkaConf.Broker...),
		Topic:        sc.Config.KafkaConf.RecommendationTopic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	defer w.Close()
	msg := kafka.Message{Key: nil, Value: body}
	return w.WriteMessages(context.Background(), msg)
}
