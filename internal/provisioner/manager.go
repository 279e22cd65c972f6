package provisioner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arencloud/hestia/internal/events"
	"github.com/arencloud/hestia/internal/models"
	"github.com/arencloud/hestia/internal/s3"
)

// BucketAPI is the provider surface the manager drives.
type BucketAPI interface {
	CreateBucket(ctx context.Context, bucket string) error
	DeleteBucket(ctx context.Context, bucket string) error
	PutPublicAccessBlock(ctx context.Context, bucket string, block s3.PublicAccessBlock) error
	PutOwnershipControls(ctx context.Context, bucket string, ownership s3.Ownership) error
	PutBucketCORS(ctx context.Context, bucket string, rules []s3.CORSRule) error
}

// ClientFunc builds a provider client for the given credentials.
type ClientFunc func(cfg s3.Config, creds s3.Credentials) (BucketAPI, error)

// TenantStore persists tenant records.
type TenantStore interface {
	Save(ctx context.Context, tenant *models.Tenant) error
}

// EventSink receives lifecycle events. *events.Bus satisfies it.
type EventSink interface {
	Emit(ctx context.Context, event events.Event)
}

// Config is the fully resolved provisioning configuration, built once at
// startup and never re-read.
type Config struct {
	Client       s3.Config
	Credentials  s3.Credentials // default provider credentials
	BucketPrefix string

	// NewClient overrides provider client construction. Nil uses the real
	// provider client.
	NewClient ClientFunc
}

// Manager provisions and deletes tenant buckets. Operations never return
// provider errors to the caller directly; failures are captured in the
// Result, logged, and counted. Lifecycle events are emitted on every exit
// path. The manager holds no per-operation state and is safe for
// concurrent use.
type Manager struct {
	cfg    Config
	store  TenantStore
	events EventSink
	log    *zap.Logger
}

func NewManager(cfg Config, store TenantStore, sink EventSink, log *zap.Logger) *Manager {
	if cfg.NewClient == nil {
		cfg.NewClient = func(c s3.Config, creds s3.Credentials) (BucketAPI, error) {
			return s3.New(c, creds)
		}
	}
	return &Manager{cfg: cfg, store: store, events: sink, log: log}
}

// BucketName derives the bucket name for a tenant key.
func (m *Manager) BucketName(tenantKey string) string {
	return m.cfg.BucketPrefix + tenantKey
}

// CreateTenantBucket provisions the bucket for a tenant, deriving the name
// from the configured prefix and the tenant key.
func (m *Manager) CreateTenantBucket(ctx context.Context, tenant *models.Tenant) Result {
	return m.CreateBucket(ctx, tenant, m.BucketName(tenant.Key))
}

// DeleteTenantBucket deletes the tenant's recorded bucket using the
// tenant's own credentials when present. A tenant without a recorded
// bucket fails with ErrNoBucket before any provider call. The tenant
// record keeps its bucket name either way; re-provisioning overwrites it.
func (m *Manager) DeleteTenantBucket(ctx context.Context, tenant *models.Tenant) Result {
	if !tenant.HasBucket() {
		return Result{Err: ErrNoBucket}
	}
	creds := s3.Credentials{AccessKey: tenant.AccessKey, SecretKey: tenant.SecretKey}
	return m.DeleteBucket(ctx, tenant.Key, tenant.BucketName, creds)
}

// CreateBucket runs the full provisioning sequence for name: create the
// bucket, disable public access blocks, set ownership, apply CORS, then
// record the name on the tenant. The first failing step stops the
// sequence; earlier steps are not rolled back. The created event fires on
// every exit path.
func (m *Manager) CreateBucket(ctx context.Context, tenant *models.Tenant, name string) (result Result) {
	m.events.Emit(ctx, events.New(events.BucketCreating, tenant.Key, name))
	defer func() {
		m.events.Emit(ctx, events.New(events.BucketCreated, tenant.Key, name))
	}()

	client, err := m.cfg.NewClient(m.cfg.Client, m.cfg.Credentials)
	if err != nil {
		return m.fail(result, "client", name, fmt.Errorf("failed to build provider client: %w", err))
	}

	if err := client.CreateBucket(ctx, name); err != nil {
		return m.fail(result, "create", name, err)
	}
	result.BucketName = name

	if err := client.PutPublicAccessBlock(ctx, name, PublicAccessDisabled()); err != nil {
		return m.fail(result, "public_access_block", name, err)
	}
	if err := client.PutOwnershipControls(ctx, name, DefaultOwnership); err != nil {
		return m.fail(result, "ownership_controls", name, err)
	}
	if err := client.PutBucketCORS(ctx, name, DefaultCORS()); err != nil {
		return m.fail(result, "cors", name, err)
	}

	tenant.BucketName = name
	if err := m.store.Save(ctx, tenant); err != nil {
		return m.fail(result, "save_tenant", name, err)
	}

	provisionedTotal.Inc()
	m.log.Info("tenant bucket provisioned",
		zap.String("tenant", tenant.Key),
		zap.String("bucket", name))
	return result
}

// DeleteBucket deletes name with the given credentials, falling back to
// the configured defaults when none are set. The deleted event fires on
// every exit path.
func (m *Manager) DeleteBucket(ctx context.Context, tenantKey, name string, creds s3.Credentials) (result Result) {
	m.events.Emit(ctx, events.New(events.BucketDeleting, tenantKey, name))
	defer func() {
		m.events.Emit(ctx, events.New(events.BucketDeleted, tenantKey, name))
	}()

	if !creds.Static() {
		creds = m.cfg.Credentials
	}
	client, err := m.cfg.NewClient(m.cfg.Client, creds)
	if err != nil {
		return m.fail(result, "client", name, fmt.Errorf("failed to build provider client: %w", err))
	}

	if err := client.DeleteBucket(ctx, name); err != nil {
		return m.fail(result, "delete", name, err)
	}
	result.BucketName = name

	deprovisionedTotal.Inc()
	m.log.Info("tenant bucket deleted",
		zap.String("tenant", tenantKey),
		zap.String("bucket", name))
	return result
}

// fail records err on the result and logs the provider's message.
func (m *Manager) fail(result Result, op, bucket string, err error) Result {
	result.Err = err
	failuresTotal.WithLabelValues(op).Inc()
	m.log.Error("Error: "+s3.ProviderMessage(err),
		zap.String("op", op),
		zap.String("bucket", bucket))
	return result
}
