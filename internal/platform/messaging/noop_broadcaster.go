package messaging

import "BitKV/internal/domain"

// NoopBroadcaster is bound when no change feed address is configured.
type NoopBroadcaster struct{}

func NewNoopBroadcaster() *NoopBroadcaster {
	return &NoopBroadcaster{}
}

func (n *NoopBroadcaster) BroadcastChange(event domain.ChangeEvent) error {
	return nil
}
