package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrInvalidTenant means the tenant identifier is missing or malformed.
	// Caller error, not retried.
	ErrInvalidTenant = errors.New("invalid tenant identifier")

	// ErrPartitionUnavailable means the tenant's data partition could not be
	// bound (transient infrastructure failure). Safe to retry; never cached.
	ErrPartitionUnavailable = errors.New("tenant partition unavailable")
)

var tenantIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// TenantPartition is one tenant's isolated data store: a dedicated database
// with a fixed set of logical collections. Handles are shared read-only by all
// callers once bound.
type TenantPartition struct {
	TenantID string

	db *mongo.Database
}

func (p *TenantPartition) Database() *mongo.Database { return p.db }

func (p *TenantPartition) Employees() *mongo.Collection     { return p.db.Collection("employees") }
func (p *TenantPartition) Departments() *mongo.Collection   { return p.db.Collection("departments") }
func (p *TenantPartition) Designations() *mongo.Collection  { return p.db.Collection("designations") }
func (p *TenantPartition) Policies() *mongo.Collection      { return p.db.Collection("policies") }
func (p *TenantPartition) Holidays() *mongo.Collection      { return p.db.Collection("holidays") }
func (p *TenantPartition) HolidayTypes() *mongo.Collection  { return p.db.Collection("holiday_types") }
func (p *TenantPartition) Trainings() *mongo.Collection     { return p.db.Collection("trainings") }
func (p *TenantPartition) Trainers() *mongo.Collection      { return p.db.Collection("trainers") }
func (p *TenantPartition) TrainingTypes() *mongo.Collection { return p.db.Collection("training_types") }
func (p *TenantPartition) Resignations() *mongo.Collection  { return p.db.Collection("resignations") }
func (p *TenantPartition) Terminations() *mongo.Collection  { return p.db.Collection("terminations") }
func (p *TenantPartition) Projects() *mongo.Collection      { return p.db.Collection("projects") }

// PartitionRegistry maps tenant identifiers to their partitions and caches the
// binding for the life of the process. The cache is the only mutable shared
// state in the dashboard core; a given tenant always resolves to the same
// *TenantPartition pointer once bound.
type PartitionRegistry struct {
	client   *mongo.Client
	dbPrefix string

	mu         sync.RWMutex
	partitions map[string]*TenantPartition

	group singleflight.Group

	// ensure runs the partition's first-time setup (index creation). Failures
	// here surface as ErrPartitionUnavailable and the binding is not cached.
	ensure func(ctx context.Context, p *TenantPartition) error
}

func NewPartitionRegistry(client *mongo.Client, dbPrefix string) *PartitionRegistry {
	if dbPrefix == "" {
		dbPrefix = "hrm"
	}
	return &PartitionRegistry{
		client:     client,
		dbPrefix:   dbPrefix,
		partitions: make(map[string]*TenantPartition),
		ensure:     EnsurePartitionIndexes,
	}
}

// Resolve returns the partition handle for tenantID, binding and caching it on
// first use. Concurrent first-time resolutions of the same tenant are
// deduplicated so only one binding attempt runs.
func (r *PartitionRegistry) Resolve(ctx context.Context, tenantID string) (*TenantPartition, error) {
	if !tenantIDPattern.MatchString(tenantID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTenant, tenantID)
	}

	r.mu.RLock()
	p, ok := r.partitions[tenantID]
	r.mu.RUnlock()
	if ok {
		return p, nil
	}

	v, err, _ := r.group.Do(tenantID, func() (interface{}, error) {
		// Re-check under the flight: another caller may have finished binding
		// between our read miss and entering the group.
		r.mu.RLock()
		p, ok := r.partitions[tenantID]
		r.mu.RUnlock()
		if ok {
			return p, nil
		}

		p = &TenantPartition{
			TenantID: tenantID,
			db:       r.client.Database(r.dbPrefix + "_" + tenantID),
		}
		if err := r.ensure(ctx, p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPartitionUnavailable, err)
		}

		r.mu.Lock()
		r.partitions[tenantID] = p
		r.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*TenantPartition), nil
}

// Evict drops a tenant's cached binding so the next Resolve rebuilds it. Not
// used on the request path; exposed for operational tooling and tests.
func (r *PartitionRegistry) Evict(tenantID string) {
	r.mu.Lock()
	delete(r.partitions, tenantID)
	r.mu.Unlock()
}

// Size reports how many partitions are currently bound.
func (r *PartitionRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.partitions)
}
