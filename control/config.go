// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Ring buffer configuration: YAML loading, validation, a reloadable store,
// and propagation onto live buffers.

package control

import (
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Config is the file form of ring.Options.
type Config struct {
	Capacity    int  `yaml:"capacity"`
	MaxCapacity int  `yaml:"max_capacity"`
	Growable    bool `yaml:"growable"`
	Overwriting bool `yaml:"overwriting"`
}

// LoadConfig decodes and validates a YAML document. Unknown keys are
// rejected; an empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode ring config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Capacity < 0 {
		result = multierror.Append(result,
			api.NewError(api.ErrCodeInvalidArgument, "capacity must not be negative").
				WithContext("capacity", c.Capacity))
	}
	if c.MaxCapacity < 0 {
		result = multierror.Append(result,
			api.NewError(api.ErrCodeInvalidArgument, "max_capacity must not be negative").
				WithContext("max_capacity", c.MaxCapacity))
	}
	if c.MaxCapacity > 0 && c.Capacity > c.MaxCapacity {
		result = multierror.Append(result,
			api.NewError(api.ErrCodeInvalidArgument, "capacity above max_capacity").
				WithContext("capacity", c.Capacity).
				WithContext("max_capacity", c.MaxCapacity))
	}
	return result.ErrorOrNil()
}

// Options converts the config for ring.FromOptions.
func (c Config) Options() ring.Options {
	return ring.Options{
		Capacity:    c.Capacity,
		MaxCapacity: c.MaxCapacity,
		Growable:    c.Growable,
		Overwriting: c.Overwriting,
	}
}

// ApplyTo reconfigures a live buffer under its lock. Either every setting
// is applied or none is; the capacity may not drop below the live size.
func ApplyTo[T any](l *ring.Locked[T], cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return l.Do(func(b *ring.Buffer[T]) error {
		if cfg.Capacity < b.Len() {
			return errors.Wrapf(api.ErrInvalidArgument,
				"capacity %d below live size %d", cfg.Capacity, b.Len())
		}
		// Lift the ceiling first so the resize cannot be refused half way.
		if err := b.SetMaxCapacity(0); err != nil {
			return err
		}
		if err := b.SetCapacity(cfg.Capacity); err != nil {
			return err
		}
		if err := b.SetMaxCapacity(cfg.MaxCapacity); err != nil {
			return err
		}
		b.SetGrowable(cfg.Growable)
		b.SetOverwriting(cfg.Overwriting)
		return nil
	})
}

// ConfigStore holds the current config and notifies listeners on change.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store with a validated config.
func NewConfigStore(initial Config) (*ConfigStore, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &ConfigStore{config: initial}, nil
}

// Get returns the current config.
func (cs *ConfigStore) Get() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

// Set validates and stores cfg, then runs listeners synchronously in
// registration order. An invalid cfg leaves the store unchanged.
func (cs *ConfigStore) Set(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cs.mu.Lock()
	cs.config = cfg
	listeners := append([]func(Config){}, cs.listeners...)
	cs.mu.Unlock()
	cs.dispatchReload(listeners, cfg)
	return nil
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload invokes listeners outside the store lock.
func (cs *ConfigStore) dispatchReload(listeners []func(Config), cfg Config) {
	for _, fn := range listeners {
		fn(cfg)
	}
}
