package model

import (
	"context"
	"fmt"
	"time"
)

// Message is an encrypted chat message. Content is base64 RSA ciphertext.
type Message struct {
	MsgID      string
	Published  time.Time
	Content    string
	Sender     string
	Receiver   string
	Attachment *string
	ChatID     string
}

// SendMessageParams is the input of a send request.
type SendMessageParams struct {
	ChatID     string
	Text       string
	Attachment *string
}

type MessageStore interface {
	Create(ctx context.Context, msg Message) (Message, error)
	ListByChat(ctx context.Context, chatID string) ([]Message, error)
}

// MessageNotifier is told about every stored message.
type MessageNotifier interface {
	NotifyMessage(msg Message)
}

// KeyPolicy selects whose public key encrypts an outgoing message.
type KeyPolicy string

const (
	// KeyPolicyRecipient encrypts to the receiver. Only the receiver can read the message.
	KeyPolicyRecipient KeyPolicy = "recipient"
	// KeyPolicySender encrypts to the sender. Only the sender can read the message.
	KeyPolicySender KeyPolicy = "sender"
)

// ParseKeyPolicy converts a config value into a KeyPolicy.
func ParseKeyPolicy(s string) (KeyPolicy, error) {
	switch KeyPolicy(s) {
	case KeyPolicyRecipient, KeyPolicySender:
		return KeyPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown key policy %q", s)
	}
}
