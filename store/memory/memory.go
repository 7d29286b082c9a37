// Package memory provides the in-process company registry.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/warp/staffing/staff"
)

var (
	// ErrCompanyNotFound is returned when no company has the given name.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyExists is returned when registering a name twice.
	ErrCompanyExists = errors.New("company already exists")
)

// =============================================================================
// REGISTRY - In-memory company store
// =============================================================================

// Registry holds companies by name. The staff types carry no locks, so
// every read or write of a company goes through View or Update, which
// hold the registry lock for the duration of the callback.
type Registry struct {
	mu        sync.RWMutex
	companies map[string]*staff.Company
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{
		companies: make(map[string]*staff.Company),
	}
}

// Add registers a company under its name.
func (r *Registry) Add(_ context.Context, c *staff.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[c.Name]; ok {
		return fmt.Errorf("%w: %q", ErrCompanyExists, c.Name)
	}
	r.companies[c.Name] = c
	r.order = append(r.order, c.Name)
	return nil
}

// Names returns registered company names in registration order.
func (r *Registry) Names(_ context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// View runs fn with shared access to the named company. fn must not
// mutate the company or retain it after returning.
func (r *Registry) View(ctx context.Context, name string, fn func(*staff.Company) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.run(ctx, name, fn)
}

// Update runs fn with exclusive access to the named company.
func (r *Registry) Update(ctx context.Context, name string, fn func(*staff.Company) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.run(ctx, name, fn)
}

func (r *Registry) run(ctx context.Context, name string, fn func(*staff.Company) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c, ok := r.companies[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCompanyNotFound, name)
	}
	return fn(c)
}

// Reset removes every company.
func (r *Registry) Reset(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.companies = make(map[string]*staff.Company)
	r.order = nil
}

// Replace swaps the whole registry content for companies, atomically.
// Used when loading a scenario.
func (r *Registry) Replace(_ context.Context, companies ...*staff.Company) error {
	next := make(map[string]*staff.Company, len(companies))
	order := make([]string, 0, len(companies))
	for _, c := range companies {
		if _, ok := next[c.Name]; ok {
			return fmt.Errorf("%w: %q", ErrCompanyExists, c.Name)
		}
		next[c.Name] = c
		order = append(order, c.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies = next
	r.order = order
	return nil
}
