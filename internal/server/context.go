package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/teemow/curator/internal/config"
	"github.com/teemow/curator/internal/curation"
	"github.com/teemow/curator/internal/gmail"
	"github.com/teemow/curator/internal/instrumentation"
	"github.com/teemow/curator/internal/store"
)

// ServerContext holds the shared state for the MCP server: the store-backed
// collections, configuration, and a lazily created Gmail client.
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	store       store.Store
	collections *curation.Collections
	config      config.Config
	mailClient  *gmail.Client
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context over the given store and
// configuration. The Gmail client is not created here; it is built on first
// use so the server can start without mail credentials.
func NewServerContext(ctx context.Context, st store.Store, cfg config.Config) (*ServerContext, error) {
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg == nil {
		cfg = config.MapConfig{}
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:         shutdownCtx,
		cancel:      cancel,
		store:       st,
		collections: curation.New(st),
		config:      cfg,
		shutdown:    false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Store returns the backing key-value store.
func (sc *ServerContext) Store() store.Store {
	return sc.store
}

// Collections returns the store-backed collection operations.
func (sc *ServerContext) Collections() *curation.Collections {
	return sc.collections
}

// Config returns the configuration source.
func (sc *ServerContext) Config() config.Config {
	return sc.config
}

// Credentials assembles the Gmail OAuth credentials from configuration.
// The returned credentials may be incomplete; callers check Complete().
func (sc *ServerContext) Credentials() gmail.Credentials {
	clientID, _ := sc.config.Get(config.KeyGmailClientID)
	clientSecret, _ := sc.config.Get(config.KeyGmailClientSecret)
	refreshToken, _ := sc.config.Get(config.KeyGmailRefreshToken)
	return gmail.Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
	}
}

// MailClient returns the Gmail client, creating and caching it on first use.
// Returns gmail.ErrMissingCredentials if the configuration carries no
// complete credential set.
func (sc *ServerContext) MailClient() (*gmail.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.mailClient != nil {
		return sc.mailClient, nil
	}

	client, err := gmail.NewClient(sc.ctx, sc.Credentials())
	if err != nil {
		return nil, err
	}

	sc.mailClient = client
	return client, nil
}

// SetMailClient sets the Gmail client. Used by tests to inject a fake.
func (sc *ServerContext) SetMailClient(client *gmail.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.mailClient = client
}

// SetInstrumentation attaches the metrics recorder and audit logger.
func (sc *ServerContext) SetInstrumentation(metrics *instrumentation.Metrics, auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
	sc.auditLogger = auditLogger
}

// Metrics returns the metrics recorder, or nil if instrumentation is not attached.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// AuditLogger returns the audit logger, or nil if instrumentation is not attached.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
