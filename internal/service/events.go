package service

import (
	"encoding/json"
	"time"

	"github.com/online-shopping/catalog-service/internal/dto"
	"github.com/rs/zerolog/log"
)

const maxPublishRetries = 3

// publishEvent pushes a catalog change event with retries. Publishing is
// best effort: the record is already persisted, so a broker outage must not
// fail the request.
func publishEvent(publisher EventPublisher, eventType string, data interface{}) {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	for i := 0; i < maxPublishRetries; i++ {
		err = publisher.Publish(jsonMsg)
		if err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Error().Err(err).Str("event_type", eventType).Msgf("failed to publish event after %d attempts", maxPublishRetries)
}
