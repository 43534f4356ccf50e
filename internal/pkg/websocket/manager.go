package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
)

// Client is one connected dashboard subscriber.
type Client struct {
	ID   string
	Conn *websocket.Conn
}

// Manager manages WebSocket connections for the live alert feed.
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, clientID string, handleClient func(*Client) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &Client{ID: clientID, Conn: ws}
	m.AddClient(client)
	defer m.RemoveClient(clientID)

	return handleClient(client)
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(clientID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, clientID)
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, models.WSEventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// Broadcast sends an event to every connected client. Failed sends are
// logged and skipped; a dead subscriber must not block the others.
func (m *Manager) Broadcast(event string, data interface{}) {
	m.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.RUnlock()

	for _, client := range clients {
		if err := m.SendMessage(client.Conn, event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("client_id", client.ID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}
