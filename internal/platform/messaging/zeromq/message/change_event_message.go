package message

import "BitKV/internal/domain"

type ChangeEventMessage struct {
	Kind      string `json:"kind"`
	Key       string `json:"key"`
	Value     string `json:"value,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func ChangeEventMessageFrom(event domain.ChangeEvent) ChangeEventMessage {
	return ChangeEventMessage{
		Kind:      event.Kind,
		Key:       event.Key,
		Value:     event.Value,
		Timestamp: event.Timestamp,
	}
}

func (m *ChangeEventMessage) ToChangeEvent() domain.ChangeEvent {
	return domain.ChangeEvent{
		Kind:      m.Kind,
		Key:       m.Key,
		Value:     m.Value,
		Timestamp: m.Timestamp,
	}
}
