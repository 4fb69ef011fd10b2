package database

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testClient returns a lazily-connecting client; no I/O happens unless an
// operation is run against it, which these tests never do.
func testClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func testRegistry(t *testing.T) *PartitionRegistry {
	r := NewPartitionRegistry(testClient(t), "hrm")
	r.ensure = func(context.Context, *TenantPartition) error { return nil }
	return r
}

func TestResolveRejectsInvalidTenantID(t *testing.T) {
	r := testRegistry(t)

	for _, id := range []string{"", "acme corp", "acme/corp", "acme!", "日本"} {
		_, err := r.Resolve(context.Background(), id)
		if !errors.Is(err, ErrInvalidTenant) {
			t.Errorf("Resolve(%q): expected ErrInvalidTenant, got %v", id, err)
		}
	}

	if r.Size() != 0 {
		t.Fatalf("expected no cached partitions, got %d", r.Size())
	}
}

func TestResolveReturnsSameHandle(t *testing.T) {
	r := testRegistry(t)

	first, err := r.Resolve(context.Background(), "acme-corp")
	if err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	second, err := r.Resolve(context.Background(), "acme-corp")
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}

	if first != second {
		t.Fatal("expected repeated Resolve to return the same partition handle")
	}
	if first.TenantID != "acme-corp" {
		t.Fatalf("expected tenant acme-corp, got %s", first.TenantID)
	}
	if got := first.Database().Name(); got != "hrm_acme-corp" {
		t.Fatalf("expected database hrm_acme-corp, got %s", got)
	}
}

func TestResolveIsolatesTenants(t *testing.T) {
	r := testRegistry(t)

	a, err := r.Resolve(context.Background(), "tenant-a")
	if err != nil {
		t.Fatalf("Resolve tenant-a failed: %v", err)
	}
	b, err := r.Resolve(context.Background(), "tenant-b")
	if err != nil {
		t.Fatalf("Resolve tenant-b failed: %v", err)
	}

	if a == b {
		t.Fatal("expected distinct handles for distinct tenants")
	}
	if a.Database().Name() == b.Database().Name() {
		t.Fatal("expected distinct databases for distinct tenants")
	}
}

func TestResolveDoesNotCacheBindingFailure(t *testing.T) {
	r := testRegistry(t)

	failing := true
	r.ensure = func(context.Context, *TenantPartition) error {
		if failing {
			return errors.New("connection reset")
		}
		return nil
	}

	_, err := r.Resolve(context.Background(), "acme-corp")
	if !errors.Is(err, ErrPartitionUnavailable) {
		t.Fatalf("expected ErrPartitionUnavailable, got %v", err)
	}
	if r.Size() != 0 {
		t.Fatalf("failed binding must not be cached, registry holds %d", r.Size())
	}

	// Next call retries from scratch and succeeds.
	failing = false
	p, err := r.Resolve(context.Background(), "acme-corp")
	if err != nil {
		t.Fatalf("retry after transient failure should succeed, got %v", err)
	}
	if p == nil || r.Size() != 1 {
		t.Fatal("expected successful binding to be cached")
	}
}

func TestResolveConcurrentFirstUse(t *testing.T) {
	r := testRegistry(t)

	var bindings int
	inner := r.ensure
	r.ensure = func(ctx context.Context, p *TenantPartition) error {
		bindings++
		return inner(ctx, p)
	}

	const callers = 16
	handles := make([]*TenantPartition, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := r.Resolve(context.Background(), "acme-corp")
			if err != nil {
				t.Errorf("Resolve failed: %v", err)
				return
			}
			handles[i] = p
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if handles[i] != handles[0] {
			t.Fatal("concurrent Resolve returned different handles for one tenant")
		}
	}
	if bindings != 1 {
		t.Fatalf("expected exactly one binding attempt, got %d", bindings)
	}
}

func TestEvictForcesRebind(t *testing.T) {
	r := testRegistry(t)

	first, err := r.Resolve(context.Background(), "acme-corp")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	r.Evict("acme-corp")

	second, err := r.Resolve(context.Background(), "acme-corp")
	if err != nil {
		t.Fatalf("Resolve after evict failed: %v", err)
	}
	if first == second {
		t.Fatal("expected a fresh handle after eviction")
	}
}
