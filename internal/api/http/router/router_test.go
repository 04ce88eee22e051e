package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reqctx "github.com/dtroode/yokai-server/internal/api/http/context"
	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/mocks"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/testutil"
)

type tokenService struct {
	*mocks.TokenService
	*mocks.TokenResolver
}

type testRouter struct {
	router   *Router
	api      *echo.Echo
	resolver *mocks.TokenResolver
	chats    *mocks.ChatService
	host     *mocks.HostService
}

func newTestRouter(t *testing.T, options Options) testRouter {
	t.Helper()

	resolver := mocks.NewTokenResolver(t)
	chats := mocks.NewChatService(t)
	host := mocks.NewHostService(t)

	r := New(Services{
		Identity: mocks.NewIdentityService(t),
		Token:    tokenService{TokenService: mocks.NewTokenService(t), TokenResolver: resolver},
		Chat:     chats,
		Message:  mocks.NewMessageService(t),
		File:     mocks.NewFileService(t),
		Profile:  mocks.NewProfileService(t),
		Account:  mocks.NewAccountService(t),
		Host:     host,
		Feed:     mocks.NewMessageFeed(t),
	}, options, reqctx.NewManager(), testutil.MakeNoopLogger())

	return testRouter{router: r, api: r.Register(), resolver: resolver, chats: chats, host: host}
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	tr := newTestRouter(t, Options{})

	routes := map[string]bool{}
	for _, route := range tr.api.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /user/create",
		"POST /login",
		"POST /logout",
		"POST /invite/create",
		"POST /user/kick",
		"POST /user/delete",
		"POST /user/contacts",
		"POST /user/tokens",
		"POST /user/edit/password",
		"POST /user/edit/name",
		"POST /user/edit/bio",
		"POST /user/edit/primary",
		"POST /user/edit/secondary",
		"POST /user/edit/tertiary",
		"POST /user/edit/pfp",
		"POST /host/edit/primary",
		"POST /host/edit/secondary",
		"POST /host/edit/tertiary",
		"POST /chat/create",
		"POST /chat/list",
		"POST /chat/delete",
		"POST /chat/messages",
		"POST /message/send",
		"POST /message/decrypt",
		"POST /files/upload",
		"POST /file/serve",
		"POST /files/list",
		"POST /files/delete",
		"GET /host",
		"GET /user/:username/key",
		"GET /user/:username/profile",
		"GET /ws",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestRouter_PublicRoute(t *testing.T) {
	tr := newTestRouter(t, Options{})
	tr.host.On("Get", mock.Anything).Return(model.HostInfo{Hostname: "yokai.local"}, nil)

	rec := do(tr.api, httptest.NewRequest(http.MethodGet, "/host", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "yokai.local")
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRouter_ProtectedRoute(t *testing.T) {
	t.Run("without token", func(t *testing.T) {
		tr := newTestRouter(t, Options{})

		rec := do(tr.api, httptest.NewRequest(http.MethodPost, "/chat/list", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"details":"`+apierrors.NewErrMissingAuthorizationToken().Message+`"}`, rec.Body.String())
	})

	t.Run("with bearer token", func(t *testing.T) {
		tr := newTestRouter(t, Options{})
		tr.resolver.On("ResolveUser", mock.Anything, "TOKEN").Return(model.User{Username: "alice"}, nil)
		tr.chats.On("ListChats", mock.Anything, "alice").Return([]model.Chat{{ChatID: "C1"}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/chat/list", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer TOKEN")
		rec := do(tr.api, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"chat_id":"C1"`)
	})

	t.Run("with token in body", func(t *testing.T) {
		tr := newTestRouter(t, Options{})
		tr.resolver.On("ResolveUser", mock.Anything, "TOKEN").Return(model.User{Username: "alice"}, nil)
		tr.chats.On("CreateChat", mock.Anything, "alice", "bobby").Return(model.Chat{ChatID: "C1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/chat/create", strings.NewReader(`{"api_token":"TOKEN","receiver":"bobby"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := do(tr.api, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestRouter_UnknownRoute(t *testing.T) {
	tr := newTestRouter(t, Options{})

	rec := do(tr.api, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "details")
}

func TestRouter_BodyLimit(t *testing.T) {
	tr := newTestRouter(t, Options{BodyLimit: "1K"})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := do(tr.api, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	tr := newTestRouter(t, Options{})
	tr.host.On("Get", mock.Anything).Return(model.HostInfo{}, nil)

	do(tr.api, httptest.NewRequest(http.MethodGet, "/host", nil))

	rec := do(tr.router.Metrics(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "yokai_requests_total")
	assert.Contains(t, string(body), `url="/host"`)
}

func TestRouter_RegistriesAreIndependent(t *testing.T) {
	assert.NotPanics(t, func() {
		newTestRouter(t, Options{})
		newTestRouter(t, Options{})
	})
}

func TestEchoLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, echoLogLevel(-4))
	assert.Equal(t, log.INFO, echoLogLevel(0))
	assert.Equal(t, log.WARN, echoLogLevel(4))
	assert.Equal(t, log.ERROR, echoLogLevel(8))
}
