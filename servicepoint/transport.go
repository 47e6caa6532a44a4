package servicepoint

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// DefaultDestination is a display, or a simulator of one, on this machine.
const DefaultDestination = "127.0.0.1:2342"

// Transport delivers packets to a display.
type Transport interface {
	Send(p Packet) error
	Close() error
}

// Kind names a transport.
type Kind string

const (
	UDP       Kind = "udp"
	WebSocket Kind = "websocket"
	Fake      Kind = "fake"
)

// ParseKind maps a name to a transport kind.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(name)); k {
	case UDP, WebSocket, Fake:
		return k, nil
	case "ws":
		return WebSocket, nil
	}
	return "", fmt.Errorf("servicepoint: unknown transport %q", name)
}

// SendError is returned when a packet could not be delivered.
type SendError struct {
	Kind   Kind
	Packet Packet
	Err    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("servicepoint: %s send %v: %v", e.Kind, e.Packet.Code, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// ErrClosed is returned when sending on a closed transport.
var ErrClosed = errors.New("servicepoint: transport closed")

// Dial connects to the display at destination, a host:port for UDP or a
// ws:// URL for WebSocket. The fake transport ignores destination.
func Dial(kind Kind, destination string) (Transport, error) {
	switch kind {
	case UDP:
		conn, err := net.Dial("udp", destination)
		if err != nil {
			return nil, fmt.Errorf("servicepoint: dial %s: %w", destination, err)
		}
		return &udpTransport{conn: conn}, nil
	case WebSocket:
		if !strings.HasPrefix(destination, "ws://") && !strings.HasPrefix(destination, "wss://") {
			return nil, fmt.Errorf("servicepoint: %q is not a ws:// url", destination)
		}
		conn, _, err := websocket.DefaultDialer.Dial(destination, nil)
		if err != nil {
			return nil, fmt.Errorf("servicepoint: dial %s: %w", destination, err)
		}
		return &wsTransport{conn: conn}, nil
	case Fake:
		return &FakeTransport{Discard: true}, nil
	}
	return nil, fmt.Errorf("servicepoint: unknown transport %q", kind)
}

type udpTransport struct {
	conn net.Conn
}

func (t *udpTransport) Send(p Packet) error {
	data, err := p.MarshalBinary()
	if err != nil {
		return &SendError{Kind: UDP, Packet: p, Err: err}
	}
	if _, err := t.conn.Write(data); err != nil {
		return &SendError{Kind: UDP, Packet: p, Err: err}
	}
	return nil
}

func (t *udpTransport) Close() error { return t.conn.Close() }

type wsTransport struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (t *wsTransport) Send(p Packet) error {
	data, err := p.MarshalBinary()
	if err != nil {
		return &SendError{Kind: WebSocket, Packet: p, Err: err}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return &SendError{Kind: WebSocket, Packet: p, Err: err}
	}
	return nil
}

func (t *wsTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	t.conn.WriteMessage(websocket.CloseMessage, msg)
	return t.conn.Close()
}

// FakeTransport records packets instead of sending them. OnSend, if set, is
// called for every packet.
type FakeTransport struct {
	mu      sync.Mutex
	Packets []Packet
	OnSend  func(Packet) error
	// Discard drops packets instead of recording them.
	Discard bool
	closed  bool
}

func (t *FakeTransport) Send(p Packet) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return &SendError{Kind: Fake, Packet: p, Err: ErrClosed}
	}
	log.WithField("packet", p).Debug("fake send")
	if !t.Discard {
		t.Packets = append(t.Packets, p)
	}
	if t.OnSend != nil {
		if err := t.OnSend(p); err != nil {
			return &SendError{Kind: Fake, Packet: p, Err: err}
		}
	}
	return nil
}

func (t *FakeTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}
