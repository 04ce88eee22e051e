package middleware

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reqctx "github.com/dtroode/yokai-server/internal/api/http/context"
	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/mocks"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/testutil"
)

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	jsonBody := `{"api_token":"tok-json","text":"hi"}`
	metaBody, metaType := multipartBody(t, map[string]string{"json": `{"api_token":"tok-meta","name":"a.png"}`})
	formBody, formType := multipartBody(t, map[string]string{"api_token": "tok-multi"})

	tests := []struct {
		name        string
		newRequest  func() *http.Request
		wantToken   string
		resolveErr  error
		wantKind    apierrors.Kind
		wantBodyOut string
	}{
		{
			name: "bearer header",
			newRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/chats", nil)
				req.Header.Set(echo.HeaderAuthorization, "Bearer tok-header")
				return req
			},
			wantToken: "tok-header",
		},
		{
			name: "json body is restored",
			newRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/message/send", strings.NewReader(jsonBody))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				return req
			},
			wantToken:   "tok-json",
			wantBodyOut: jsonBody,
		},
		{
			name: "urlencoded form",
			newRequest: func() *http.Request {
				form := url.Values{"api_token": {"tok-form"}}
				req := httptest.NewRequest(http.MethodPost, "/chats", strings.NewReader(form.Encode()))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
				return req
			},
			wantToken: "tok-form",
		},
		{
			name: "multipart field",
			newRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/file/upload", bytes.NewReader(formBody.Bytes()))
				req.Header.Set(echo.HeaderContentType, formType)
				return req
			},
			wantToken: "tok-multi",
		},
		{
			name: "multipart json metadata",
			newRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/file/upload", bytes.NewReader(metaBody.Bytes()))
				req.Header.Set(echo.HeaderContentType, metaType)
				return req
			},
			wantToken: "tok-meta",
		},
		{
			name: "query parameter",
			newRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/ws?api_token=tok-query", nil)
			},
			wantToken: "tok-query",
		},
		{
			name: "missing token",
			newRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/chats", nil)
			},
			wantKind: apierrors.KindUnauthenticated,
		},
		{
			name: "unknown token",
			newRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/chats", nil)
				req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
				return req
			},
			wantToken:  "stale",
			resolveErr: apierrors.NewErrTokenNotFound(),
			wantKind:   apierrors.KindUnauthenticated,
		},
		{
			name: "store failure passes through",
			newRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/chats", nil)
				req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
				return req
			},
			wantToken:  "tok",
			resolveErr: apierrors.NewErrStore(errors.New("db down")),
			wantKind:   apierrors.KindStore,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := mocks.NewTokenResolver(t)
			user := model.User{Username: "alice"}
			if tt.wantToken != "" {
				if tt.resolveErr != nil {
					resolver.On("ResolveUser", mock.Anything, tt.wantToken).Return(model.User{}, tt.resolveErr)
				} else {
					resolver.On("ResolveUser", mock.Anything, tt.wantToken).Return(user, nil)
				}
			}

			cm := reqctx.NewManager()
			m := NewAuthenticate(resolver, cm, testutil.MakeNoopLogger())

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(tt.newRequest(), rec)

			called := false
			err := m.Handle(func(c echo.Context) error {
				called = true

				got, ok := cm.GetUserFromContext(c.Request().Context())
				assert.True(t, ok)
				assert.Equal(t, user, got)

				token, ok := cm.GetTokenFromContext(c.Request().Context())
				assert.True(t, ok)
				assert.Equal(t, tt.wantToken, token)

				if tt.wantBodyOut != "" {
					body, err := io.ReadAll(c.Request().Body)
					require.NoError(t, err)
					assert.Equal(t, tt.wantBodyOut, string(body))
				}
				return nil
			})(c)

			if tt.wantKind != apierrors.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apierrors.KindOf(err))
				assert.False(t, called)
				return
			}

			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}
