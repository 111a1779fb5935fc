package whatsapp

import (
	"context"
	"errors"
)

// Message is one outbound chat message. To is an already normalized number.
type Message struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

type Provider interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

var ErrDisabled = errors.New("whatsapp_sending_disabled")

// Disabled is used when no webhook is configured; every send fails with ErrDisabled.
type Disabled struct{}

func (Disabled) Name() string { return "disabled" }

func (Disabled) Send(context.Context, Message) error {
	return ErrDisabled
}
