package cache

import (
	"context"
	"math/big"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vellum-lang/vellum/internal/ast"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestStoreAndLookup(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	e := &ast.NaturalLit{Value: big.NewInt(7)}
	key, err := Key(e)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}

	if _, ok, err := c.Lookup(ctx, key); err != nil || ok {
		t.Fatalf("expected a cache miss before Store, got ok=%v err=%v", ok, err)
	}

	if err := c.Store(ctx, key, e); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok, err := c.Lookup(ctx, key)
	if err != nil || !ok {
		t.Fatalf("expected a cache hit after Store, got ok=%v err=%v", ok, err)
	}
	gotLit, ok := got.(*ast.NaturalLit)
	if !ok || gotLit.Value.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("Lookup returned %#v, want NaturalLit(7)", got)
	}
}

func TestKeyIsDeterministic(t *testing.T) {
	a := &ast.NaturalLit{Value: big.NewInt(1)}
	b := &ast.NaturalLit{Value: big.NewInt(1)}
	ka, err := Key(a)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	kb, err := Key(b)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if ka != kb {
		t.Errorf("Key(a) = %s, Key(b) = %s, want equal for structurally identical input", ka, kb)
	}

	c, err := Key(&ast.NaturalLit{Value: big.NewInt(2)})
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if ka == c {
		t.Errorf("Key collided for distinct inputs")
	}
}

func TestGetOrComputeDedupsConcurrentCallers(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	e := &ast.NaturalLit{Value: big.NewInt(99)}
	key, err := Key(e)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}

	var calls int64
	compute := func() (ast.Expr, error) {
		atomic.AddInt64(&calls, 1)
		return e, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.GetOrCompute(ctx, key, compute); err != nil {
				t.Errorf("GetOrCompute: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Errorf("compute ran %d times, want exactly 1 under singleflight dedup", got)
	}
}

func TestStatsAndClean(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		e := &ast.NaturalLit{Value: big.NewInt(int64(i))}
		key, err := Key(e)
		if err != nil {
			t.Fatalf("Key: %v", err)
		}
		if err := c.Store(ctx, key, e); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}

	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Entries != 3 {
		t.Errorf("Stats.Entries = %d, want 3", stats.Entries)
	}

	if err := c.Clean(ctx); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	stats, err = c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("Stats.Entries after Clean = %d, want 0", stats.Entries)
	}
}
