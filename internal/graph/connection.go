package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// State tracks the connection lifecycle. A Connection starts Disconnected,
// becomes Connected after a successful Connect, and ends Closed. Closed is
// terminal.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return "disconnected"
	}
}

// Connection owns the Bolt driver handle and hands out short-lived sessions
// per statement. It is the single owner of the driver; repositories hold a
// non-owning reference through the Client interface.
type Connection struct {
	opts   Options
	logger *slog.Logger

	mu     sync.Mutex
	driver neo4j.DriverWithContext
	state  State
}

// NewConnection returns a Connection in the Disconnected state. Connect must
// be called before any statement is executed.
func NewConnection(opts Options, logger *slog.Logger) *Connection {
	if logger == nil {
		logger = slog.Default()
	}
	return &Connection{
		opts:   opts,
		logger: logger,
		state:  StateDisconnected,
	}
}

// Connect establishes the driver and validates reachability and credentials
// with a trivial round-trip query. On failure the connection stays
// Disconnected and the cause is returned; no error escapes as a panic.
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateConnected:
		return nil
	case StateClosed:
		return fmt.Errorf("connect on closed connection: %w", ErrNotConnected)
	}

	if c.opts.URI == "" {
		return ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if c.opts.Username != "" {
		auth = neo4j.BasicAuth(c.opts.Username, c.opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(c.opts.URI, auth, func(cfg *neo4j.Config) {
		if c.opts.MaxConnections > 0 {
			cfg.MaxConnectionPoolSize = c.opts.MaxConnections
		}
	})
	if err != nil {
		c.logger.Error("failed to create graph driver", "uri", c.opts.URI, "error", err)
		return fmt.Errorf("create graph driver: %w", err)
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.opts.Database})
	_, err = session.Run(ctx, "RETURN 1", nil)
	closeErr := session.Close(ctx)
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = driver.Close(ctx)
		c.logger.Error("graph connectivity check failed", "uri", c.opts.URI, "error", err)
		return fmt.Errorf("verify graph connectivity: %w", err)
	}

	c.driver = driver
	c.state = StateConnected
	c.logger.Info("connected to graph database", "uri", c.opts.URI)
	return nil
}

// ExecuteWrite runs one write statement in a fresh session.
func (c *Connection) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return c.execute(ctx, neo4j.AccessModeWrite, cypher, params)
}

// ExecuteRead runs one read statement in a fresh session.
func (c *Connection) ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return c.execute(ctx, neo4j.AccessModeRead, cypher, params)
}

func (c *Connection) execute(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) (Result, error) {
	driver, err := c.currentDriver()
	if err != nil {
		return Result{}, err
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.opts.Database,
		AccessMode:   mode,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return Result{}, err
	}
	return consumeResult(ctx, res)
}

// VerifyConnectivity checks the driver can still reach the database.
func (c *Connection) VerifyConnectivity(ctx context.Context) error {
	driver, err := c.currentDriver()
	if err != nil {
		return err
	}
	return driver.VerifyConnectivity(ctx)
}

// TestConnection reports whether a trivial round-trip succeeds. It never
// returns an error; failures are logged.
func (c *Connection) TestConnection(ctx context.Context) bool {
	res, err := c.ExecuteRead(ctx, "RETURN 'Connection OK' as message", nil)
	if err != nil {
		c.logger.Error("connection test failed", "error", err)
		return false
	}
	if len(res.Records) == 1 {
		c.logger.Info("connection test passed", "message", res.Records[0]["message"])
	}
	return true
}

// Close releases the driver and moves to Closed. It is idempotent: closing
// twice, or closing without ever connecting, is a no-op.
func (c *Connection) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	driver := c.driver
	c.driver = nil
	c.state = StateClosed

	if driver == nil {
		return nil
	}
	if err := driver.Close(ctx); err != nil {
		return fmt.Errorf("close graph driver: %w", err)
	}
	c.logger.Info("graph connection closed")
	return nil
}

// State reports the current lifecycle state.
func (c *Connection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connection) currentDriver() (neo4j.DriverWithContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConnected || c.driver == nil {
		return nil, ErrNotConnected
	}
	return c.driver, nil
}

func consumeResult(ctx context.Context, res neo4j.ResultWithContext) (Result, error) {
	var records []Record
	for res.Next(ctx) {
		rec := res.Record()
		record := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			value, _ := rec.Get(key)
			record[key] = value
		}
		records = append(records, record)
	}
	if err := res.Err(); err != nil {
		return Result{}, err
	}

	summary, err := res.Consume(ctx)
	if err != nil {
		return Result{}, err
	}
	counters := summary.Counters()

	return Result{
		Records: records,
		Counters: Counters{
			NodesCreated:         counters.NodesCreated(),
			NodesDeleted:         counters.NodesDeleted(),
			RelationshipsCreated: counters.RelationshipsCreated(),
		},
	}, nil
}
