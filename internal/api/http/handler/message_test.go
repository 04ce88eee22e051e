package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reqctx "github.com/dtroode/yokai-server/internal/api/http/context"
	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/mocks"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/testutil"
)

func newTestMessage(t *testing.T) (*Message, *mocks.MessageService) {
	t.Helper()

	svc := mocks.NewMessageService(t)
	return NewMessage(svc, reqctx.NewManager(), testutil.MakeNoopLogger()), svc
}

func TestMessage_Send(t *testing.T) {
	t.Run("empty attachment is dropped", func(t *testing.T) {
		h, svc := newTestMessage(t)
		svc.On("Send", mock.Anything, testUser, model.SendMessageParams{ChatID: "C1", Text: "hello"}).
			Return(model.Message{MsgID: "M1", Content: "Y2lwaGVy", Sender: "alice", Receiver: "bobby", ChatID: "C1"}, nil)

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/message/send",
			body:   jsonBody(`{"chat_id":"C1","text":"hello","attachment":""}`),
			user:   &testUser,
		}, h.Send)

		require.Equal(t, http.StatusCreated, rec.Code)
		got := decode[messageResponse](t, rec)
		assert.Equal(t, "M1", got.MsgID)
		assert.Nil(t, got.Attachment)
		assert.NotContains(t, rec.Body.String(), "hello")
	})

	t.Run("with attachment", func(t *testing.T) {
		h, svc := newTestMessage(t)
		attachment := "F1"
		svc.On("Send", mock.Anything, testUser, model.SendMessageParams{ChatID: "C1", Text: "look", Attachment: &attachment}).
			Return(model.Message{MsgID: "M2", Attachment: &attachment}, nil)

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/message/send",
			body:   jsonBody(`{"chat_id":"C1","text":"look","attachment":"F1"}`),
			user:   &testUser,
		}, h.Send)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("too long", func(t *testing.T) {
		h, svc := newTestMessage(t)
		svc.On("Send", mock.Anything, testUser, mock.Anything).Return(model.Message{}, apierrors.NewErrMessageTooLong(300, 245))

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/message/send",
			body:   jsonBody(`{"chat_id":"C1","text":"x"}`),
			user:   &testUser,
		}, h.Send)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing text", func(t *testing.T) {
		h, _ := newTestMessage(t)

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/message/send",
			body:   jsonBody(`{"chat_id":"C1"}`),
			user:   &testUser,
		}, h.Send)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "text is required", decode[errorResponse](t, rec).Details)
	})
}

func TestMessage_Decrypt(t *testing.T) {
	t.Run("plaintext", func(t *testing.T) {
		h, svc := newTestMessage(t)
		svc.On("Decrypt", mock.Anything, testUser, "Y2lwaGVy").Return("hello", nil)

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/message/decrypt",
			body:   jsonBody(`{"content":"Y2lwaGVy"}`),
			user:   &testUser,
		}, h.Decrypt)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, decryptResponse{Text: "hello"}, decode[decryptResponse](t, rec))
	})

	t.Run("wrong key", func(t *testing.T) {
		h, svc := newTestMessage(t)
		svc.On("Decrypt", mock.Anything, testUser, "Y2lwaGVy").
			Return("", apierrors.NewErrCrypto(nil, "failed to decrypt message"))

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/message/decrypt",
			body:   jsonBody(`{"content":"Y2lwaGVy"}`),
			user:   &testUser,
		}, h.Decrypt)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
