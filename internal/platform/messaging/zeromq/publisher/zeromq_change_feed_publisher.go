package publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"BitKV/internal/domain"
	"BitKV/internal/platform/messaging/zeromq/message"

	"github.com/go-zeromq/zmq4"
)

// ZeroMQChangeFeedPublisher broadcasts every store mutation on a PUB
// socket, one topic per event kind, so downstream consumers can follow
// the change feed without polling the store.
type ZeroMQChangeFeedPublisher struct {
	pub     zmq4.Socket
	address string
}

func NewZeroMQChangeFeedPublisher(address string) (*ZeroMQChangeFeedPublisher, error) {
	reconnectOpt := zmq4.WithAutomaticReconnect(true)
	retryOpt := zmq4.WithDialerRetry(time.Second * 5)
	socket := zmq4.NewPub(context.Background(), reconnectOpt, retryOpt)

	z := &ZeroMQChangeFeedPublisher{
		pub:     socket,
		address: address,
	}
	if err := z.pub.Listen(address); err != nil {
		log.Println("Error starting change feed publisher", err)
		return nil, err
	}
	log.Println("Started change feed publisher on", address)
	return z, nil
}

func (z *ZeroMQChangeFeedPublisher) BroadcastChange(event domain.ChangeEvent) error {
	payload, err := MarshalChangeEventMessage(message.ChangeEventMessageFrom(event))
	if err != nil {
		return err
	}
	return z.pub.Send(zmqMessage(event.Kind, payload))
}

func (z *ZeroMQChangeFeedPublisher) Close() error {
	return z.pub.Close()
}

func zmqMessage(topic string, payload []byte) zmq4.Msg {
	msg := zmq4.NewMsgFrom(
		[][]byte{
			[]byte(topic),
			payload,
		}...,
	)
	return msg
}

func MarshalChangeEventMessage(msg message.ChangeEventMessage) ([]byte, error) {
	return json.Marshal(msg)
}
