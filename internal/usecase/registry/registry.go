package registry

import (
	"fmt"
	"sync"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

// Registry tracks installed auction and derivative modules keyed by
// versioned reference. Sunsetting a module keeps it resolvable so live lots
// can finish; the router checks IsSunset before routing new lots to it.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]auctionv1.Module
	sunset  map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]auctionv1.Module),
		sunset:  make(map[string]bool),
	}
}

// Install registers a module under its own reference. Installing the same
// (name, version) twice is rejected.
func (r *Registry) Install(module auctionv1.Module) error {
	if module == nil {
		return errors.NewErrorDetails("module cannot be nil", string(errors.InvalidParams), "module")
	}
	ref := module.Ref()
	if ref.IsZero() {
		return errors.NewErrorDetails("module ref cannot be zero", string(errors.InvalidParams), "ref")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := ref.String()
	if _, exists := r.modules[key]; exists {
		return errors.NewErrorDetails(
			fmt.Sprintf("module %s is already installed", key),
			string(errors.ModuleAlreadyInstalled),
			"ref",
		)
	}

	r.modules[key] = module
	return nil
}

// Auction resolves an installed auction module by reference.
func (r *Registry) Auction(ref auctionv1.Ref) (auctionv1.AuctionModule, error) {
	module, err := r.resolve(ref, auctionv1.KindAuction)
	if err != nil {
		return nil, err
	}
	return module.(auctionv1.AuctionModule), nil
}

// Derivative resolves an installed derivative module by reference.
func (r *Registry) Derivative(ref auctionv1.Ref) (auctionv1.DerivativeModule, error) {
	module, err := r.resolve(ref, auctionv1.KindDerivative)
	if err != nil {
		return nil, err
	}
	return module.(auctionv1.DerivativeModule), nil
}

// Sunset flags an installed module so no new lots route to it. Idempotent.
func (r *Registry) Sunset(ref auctionv1.Ref) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ref.String()
	if _, exists := r.modules[key]; !exists {
		return errors.NewErrorDetails(
			fmt.Sprintf("module %s is not installed", key),
			string(errors.ModuleNotInstalled),
			"ref",
		)
	}

	r.sunset[key] = true
	return nil
}

// IsSunset reports whether a module has been sunset. Unknown refs read as
// false; resolution errors surface when the ref is actually used.
func (r *Registry) IsSunset(ref auctionv1.Ref) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sunset[ref.String()]
}

func (r *Registry) resolve(ref auctionv1.Ref, kind auctionv1.Kind) (auctionv1.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := ref.String()
	module, exists := r.modules[key]
	if !exists {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("module %s is not installed", key),
			string(errors.ModuleNotInstalled),
			"ref",
		)
	}
	if module.Kind() != kind {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("module %s is a %s module, need %s", key, module.Kind(), kind),
			string(errors.ModuleWrongKind),
			"ref",
		)
	}
	return module, nil
}
