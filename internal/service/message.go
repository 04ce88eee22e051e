package service

import (
	"context"
	"errors"
	"time"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/cipher"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/validation"
)

// Message encrypts, stores and decrypts chat messages.
//
// With KeyPolicyRecipient the text is encrypted under the receiver's public
// key, so only the receiver can decrypt it. KeyPolicySender keeps the older
// encrypt-to-self behavior, where only the sender can decrypt.
type Message struct {
	chatStore    model.ChatStore
	messageStore model.MessageStore
	userStore    model.UserStore
	fileStore    model.FileStore
	notifier     model.MessageNotifier
	policy       model.KeyPolicy
	logger       *logger.Logger
}

func NewMessage(
	chatStore model.ChatStore,
	messageStore model.MessageStore,
	userStore model.UserStore,
	fileStore model.FileStore,
	notifier model.MessageNotifier,
	policy model.KeyPolicy,
	logger *logger.Logger,
) *Message {
	return &Message{
		chatStore:    chatStore,
		messageStore: messageStore,
		userStore:    userStore,
		fileStore:    fileStore,
		notifier:     notifier,
		policy:       policy,
		logger:       logger,
	}
}

func (s *Message) Send(ctx context.Context, sender model.User, params model.SendMessageParams) (model.Message, error) {
	if !validation.Message(params.Text) {
		return model.Message{}, apierrors.NewErrMessageTooLong(len(params.Text), validation.MaxMessageBytes)
	}

	chat, err := s.participantChat(ctx, sender.Username, params.ChatID)
	if err != nil {
		return model.Message{}, err
	}
	receiver := chat.Counterparty(sender.Username)

	if params.Attachment != nil {
		if err := s.checkAttachment(ctx, sender.Username, *params.Attachment); err != nil {
			return model.Message{}, err
		}
	}

	publicKey, err := s.encryptionKey(ctx, sender, receiver)
	if err != nil {
		return model.Message{}, err
	}

	content, err := cipher.Encrypt(params.Text, publicKey)
	if err != nil {
		return model.Message{}, cipherError("encrypt message", err)
	}

	now := time.Now()
	msg, err := s.messageStore.Create(ctx, model.Message{
		MsgID:      newID(now, sender.Username, receiver, chat.ChatID),
		Published:  now,
		Content:    content,
		Sender:     sender.Username,
		Receiver:   receiver,
		Attachment: params.Attachment,
		ChatID:     chat.ChatID,
	})
	if errors.Is(err, model.ErrNotFound) {
		// The chat was deleted after the participant check.
		return model.Message{}, apierrors.NewErrChatNotFound(params.ChatID)
	}
	if err != nil {
		return model.Message{}, storeError("create message", err)
	}

	s.logger.Info("Message service: message stored",
		"msg_id", msg.MsgID,
		"chat_id", msg.ChatID,
		"key_policy", string(s.policy))

	if s.notifier != nil {
		s.notifier.NotifyMessage(msg)
	}

	return msg, nil
}

// Decrypt opens ciphertext with the caller's private key.
func (s *Message) Decrypt(_ context.Context, user model.User, ciphertext string) (string, error) {
	plaintext, err := cipher.Decrypt(ciphertext, user.PrivateKey)
	if err != nil {
		s.logger.Debug("Message service: decrypt failed",
			"username", user.Username,
			"error", err.Error())
		return "", cipherError("decrypt message", err)
	}
	return plaintext, nil
}

// List returns the messages of a chat the caller takes part in, oldest first.
func (s *Message) List(ctx context.Context, username, chatID string) ([]model.Message, error) {
	chat, err := s.participantChat(ctx, username, chatID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageStore.ListByChat(ctx, chat.ChatID)
	if err != nil {
		return nil, storeError("list messages", err)
	}
	return messages, nil
}

func (s *Message) participantChat(ctx context.Context, username, chatID string) (model.Chat, error) {
	chat, err := s.chatStore.GetByID(ctx, chatID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Chat{}, apierrors.NewErrChatNotFound(chatID)
	}
	if err != nil {
		return model.Chat{}, storeError("get chat", err)
	}
	if !chat.HasParticipant(username) {
		return model.Chat{}, apierrors.NewErrNotParticipant(chatID)
	}
	return chat, nil
}

func (s *Message) checkAttachment(ctx context.Context, owner, fileID string) error {
	file, err := s.fileStore.GetByID(ctx, fileID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrFileNotFound(fileID)
	}
	if err != nil {
		return storeError("get attachment", err)
	}
	if file.Owner != owner {
		return apierrors.NewErrNotFileOwner(fileID)
	}
	return nil
}

func (s *Message) encryptionKey(ctx context.Context, sender model.User, receiver string) (string, error) {
	if s.policy == model.KeyPolicySender {
		return sender.PublicKey, nil
	}

	user, err := s.userStore.GetByUsername(ctx, receiver)
	if err != nil {
		return "", lookupUser(err, receiver)
	}
	return user.PublicKey, nil
}
