package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

// envelope mirrors the gateway wire format. The suite keeps its own copy so
// the scenarios stay black-box against a deployed instance.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.GatewayAddr == "" {
		s.T().Skip("GATEWAY_ADDR not set, skipping e2e scenarios")
	}
}

// Register creates an account over the HTTP surface and returns its token.
func (s *BaseWsSuite) Register(email, username, password string) string {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"username": username,
		"password": password,
	})
	s.Require().NoError(err)

	resp, err := http.Post(
		fmt.Sprintf("http://%s/register", s.Config.GatewayAddr),
		"application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out.Token
}

// WsConn dials the gateway with logging and colors for each test step.
func (s *BaseWsSuite) WsConn(t *testing.T, name string) *WsClient {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	url := fmt.Sprintf("ws://%s/ws", s.Config.GatewayAddr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err, "Failed to connect to gateway at "+url)
	return &WsClient{t: t, conn: conn, debugJSON: s.Config.DebugJSON}
}

type WsClient struct {
	t         *testing.T
	conn      *websocket.Conn
	debugJSON bool
}

func (c *WsClient) Close() {
	_ = c.conn.Close()
}

// Send marshals one event frame and pushes it down the socket.
func (c *WsClient) Send(eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	frame := envelope{Type: eventType, Payload: raw}
	if c.debugJSON {
		c.t.Logf("SEND %s %s", eventType, raw)
	}
	return c.conn.WriteJSON(frame)
}

// WaitFor reads frames until one matches eventType, failing on timeout.
// Frames of other types are logged and skipped, which keeps scenarios
// insensitive to interleaved presence or typing traffic.
func (c *WsClient) WaitFor(eventType string, timeout time.Duration) envelope {
	deadline := time.Now().Add(timeout)
	for {
		_ = c.conn.SetReadDeadline(deadline)
		var frame envelope
		if err := c.conn.ReadJSON(&frame); err != nil {
			c.t.Fatalf("waiting for %q: %v", eventType, err)
		}
		if c.debugJSON {
			c.t.Logf("RECV %s %s", frame.Type, frame.Payload)
		}
		if frame.Type == eventType {
			return frame
		}
	}
}
