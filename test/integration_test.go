package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"parley/domain"
	"parley/infrastructure/ws"
	"parley/observability"
	"parley/repositories"
	"parley/runtime"
	"parley/services"
)

type gatewayFixture struct {
	srv         *httptest.Server
	store       *repositories.BadgerStore
	permissions *services.PermissionService
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()
	req := require.New(t)

	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repositories.NewBadgerStore(db, log)
	users := repositories.NewUserRepository(db)
	monitoring := observability.NewMonitoringManager(log)
	limiter := runtime.NewRateLimiter(log, time.Minute, 100, nil)
	orchestrator := runtime.NewOrchestrator(log, store, monitoring, limiter)
	permissions := services.NewPermissionService(log, store)
	chat := services.NewChatService(log, orchestrator, permissions, store)
	voice := services.NewVoiceService(log, orchestrator, permissions, store)
	authService := services.NewAuthService(users, time.Hour)

	dispatcher := ws.NewDispatcher(log, orchestrator, authService, chat, voice)
	gateway := ws.NewServer(log, dispatcher, authService, nil, 64, 5*time.Second)

	srv := httptest.NewServer(gateway.Routes())
	t.Cleanup(srv.Close)

	return &gatewayFixture{srv: srv, store: store, permissions: permissions}
}

func (f *gatewayFixture) register(t *testing.T, email, username string) string {
	t.Helper()
	req := require.New(t)

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"username": username,
		"password": "Sup3r-Secret-Pass!",
	})
	req.NoError(err)

	resp, err := http.Post(f.srv.URL+"/register", "application/json", bytes.NewReader(body))
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	req.NoError(json.NewDecoder(resp.Body).Decode(&out))
	req.NotEmpty(out.Token)
	return out.Token
}

type wsClient struct {
	t    *testing.T
	conn *websocket.Conn
}

func (f *gatewayFixture) dial(t *testing.T) *wsClient {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return &wsClient{t: t, conn: conn}
}

func (c *wsClient) send(eventType string, payload any) {
	c.t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(c.t, err)
	frame, err := json.Marshal(ws.Envelope{Type: eventType, Payload: raw})
	require.NoError(c.t, err)
	require.NoError(c.t, c.conn.WriteMessage(websocket.TextMessage, frame))
}

// waitFor reads frames until one matches, skipping unrelated events such as
// presence edges.
func (c *wsClient) waitFor(eventType string) json.RawMessage {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, raw, err := c.conn.ReadMessage()
		require.NoError(c.t, err, "waiting for %q", eventType)
		var env ws.Envelope
		require.NoError(c.t, json.Unmarshal(raw, &env))
		if env.Type == eventType {
			return env.Payload
		}
	}
}

func (c *wsClient) authenticate(token string) string {
	c.t.Helper()
	c.send("authenticate", map[string]string{"token": token})
	payload := c.waitFor("authenticated")
	var out struct {
		UserID string `json:"userId"`
	}
	require.NoError(c.t, json.Unmarshal(payload, &out))
	require.NotEmpty(c.t, out.UserID)
	return out.UserID
}

func Test_Gateway_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newGatewayFixture(t)

	// 1. Two users register over HTTP and authenticate their sockets
	aliceToken := f.register(t, "alice@example.com", "alice")
	bobToken := f.register(t, "bob@example.com", "bob")

	alice := f.dial(t)
	aliceID := alice.authenticate(aliceToken)

	bob := f.dial(t)
	bobID := bob.authenticate(bobToken)
	req.NotEqual(aliceID, bobID)

	// Alice is already in the presence room and sees bob come online
	var presence struct {
		UserID string `json:"userId"`
		Status string `json:"status"`
	}
	req.NoError(json.Unmarshal(alice.waitFor("presence_changed"), &presence))
	req.Equal(bobID, presence.UserID)
	req.Equal("online", presence.Status)

	// 2. Provision a server with a text channel both users belong to
	server, defaultRole, err := f.permissions.ProvisionServer(ctx, aliceID, "integration")
	req.NoError(err)
	req.NoError(f.store.SaveChannel(ctx, domain.Channel{
		ID: "general", ServerID: server.ID, Name: "general", Kind: domain.ChannelText,
	}))
	for _, userID := range []string{aliceID, bobID} {
		req.NoError(f.store.SaveMembership(ctx, domain.Membership{
			ServerID: server.ID, UserID: userID, RoleID: defaultRole.ID,
		}))
	}

	// 3. Alice joins and hears her own message back, proving the
	//    subscription is committed before going further
	alice.send("join_channel", map[string]string{"channelId": "general"})
	alice.send("send_message", map[string]string{"channelId": "general", "content": "ping"})
	var echoed struct {
		Message domain.Message `json:"message"`
	}
	req.NoError(json.Unmarshal(alice.waitFor("new_message"), &echoed))
	req.Equal("ping", echoed.Message.Content)
	req.Equal(aliceID, echoed.Message.SenderID)

	// 4. Bob joins and his message reaches both subscribers
	bob.send("join_channel", map[string]string{"channelId": "general"})
	bob.send("send_message", map[string]string{"channelId": "general", "content": "pong"})

	var received struct {
		Message domain.Message `json:"message"`
	}
	req.NoError(json.Unmarshal(alice.waitFor("new_message"), &received))
	req.Equal("pong", received.Message.Content)
	req.Equal(bobID, received.Message.SenderID)
	req.Equal("general", received.Message.ChannelID)
	req.NoError(json.Unmarshal(bob.waitFor("new_message"), &received))
	req.Equal("pong", received.Message.Content)

	// 5. Typing reaches the other subscriber but never the sender
	bob.send("typing", map[string]string{"channelId": "general"})
	var typing struct {
		ChannelID string `json:"channelId"`
		UserID    string `json:"userId"`
	}
	req.NoError(json.Unmarshal(alice.waitFor("user_typing"), &typing))
	req.Equal(bobID, typing.UserID)
	req.Equal("general", typing.ChannelID)

	// 6. A non-member is turned away at the channel door
	malloryToken := f.register(t, "mallory@example.com", "mallory")
	mallory := f.dial(t)
	mallory.authenticate(malloryToken)
	mallory.send("join_channel", map[string]string{"channelId": "general"})
	var denied struct {
		Code string `json:"code"`
		Op   string `json:"op"`
	}
	req.NoError(json.Unmarshal(mallory.waitFor("error"), &denied))
	req.Equal("permission_denied", denied.Code)
	req.Equal("join_channel", denied.Op)

	// 7. Closing bob's socket runs the cleanup cascade and alice sees the
	//    offline edge
	req.NoError(bob.conn.Close())
	for {
		req.NoError(json.Unmarshal(alice.waitFor("presence_changed"), &presence))
		if presence.Status == "offline" {
			break
		}
	}
	req.Equal(bobID, presence.UserID)
}

func Test_Gateway_Rejects_Bad_Credentials(t *testing.T) {
	req := require.New(t)
	f := newGatewayFixture(t)
	f.register(t, "alice@example.com", "alice")

	body, err := json.Marshal(map[string]string{"email": "alice@example.com", "password": "wrong-password"})
	req.NoError(err)
	resp, err := http.Post(f.srv.URL+"/login", "application/json", bytes.NewReader(body))
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusUnauthorized, resp.StatusCode)

	// Registering the same email twice is a conflict
	body, err = json.Marshal(map[string]string{
		"email": "alice@example.com", "username": "imposter", "password": "Sup3r-Secret-Pass!",
	})
	req.NoError(err)
	resp, err = http.Post(f.srv.URL+"/register", "application/json", bytes.NewReader(body))
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusConflict, resp.StatusCode)
}
