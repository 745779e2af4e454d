package server

import (
	"net/http"
	"net/url"
	"time"
)

// SessionConfig holds configuration for individual live sessions.
type SessionConfig struct {
	// ReadTimeout is the maximum time to wait for a message from the
	// client. The heartbeat keeps healthy connections inside it.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// HeartbeatInterval is the time between heartbeat pings.
	// Default: 30 seconds.
	HeartbeatInterval time.Duration

	// MaxMessageSize is the maximum size of an incoming WebSocket
	// message. Default: 64KB.
	MaxMessageSize int64

	// MaxEventQueue is the size of the event channel buffer. Events
	// arriving on a full queue are dropped with a warning.
	// Default: 256.
	MaxEventQueue int
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    64 * 1024,
		MaxEventQueue:     256,
	}
}

// Clone returns a copy of the SessionConfig.
func (c *SessionConfig) Clone() *SessionConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// Config holds configuration for the HTTP/WebSocket server.
type Config struct {
	// Address is the address to listen on (":8080", "localhost:3000").
	// Default: ":8080".
	Address string

	// ReadBufferSize is the WebSocket read buffer size.
	// Default: 4096.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size.
	// Default: 4096.
	WriteBufferSize int

	// CheckOrigin is called to validate the request origin on upgrade.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// Session is the configuration for individual sessions.
	// Default: DefaultSessionConfig().
	Session *SessionConfig

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 10 seconds.
	ReadHeaderTimeout time.Duration

	// IdleTimeout is the keep-alive idle limit for HTTP connections.
	// Default: 2 minutes.
	IdleTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful
	// shutdown. Default: 30 seconds.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
// CheckOrigin enforces same-origin by default.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       SameOriginCheck,
		Session:           DefaultSessionConfig(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ShutdownTimeout:   30 * time.Second,
	}
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Session = c.Session.Clone()
	return &clone
}

// SameOriginCheck validates that the WebSocket request origin matches
// the host. Requests without an Origin header (curl, same-origin
// fetches) pass.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if r.Host == "" {
		return false
	}
	return originURL.Host == r.Host
}
