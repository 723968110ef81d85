// Package profile persists named interface configurations so a known-good
// setup can be reapplied by name.
package profile

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"go-netcfg/internal/pkg/config"
	"go-netcfg/internal/pkg/logging"
	"go-netcfg/internal/port"
	"go-netcfg/internal/types"
)

// Store keeps the profile collection in a single YAML file. The whole file
// is rewritten on every mutation; profiles are expected to stay small.
type Store struct {
	mu    sync.Mutex
	files port.FileManager
	path  string
}

// NewStore creates a profile store persisting to path.
func NewStore(files port.FileManager, path string) *Store {
	return &Store{files: files, path: path}
}

// Save validates and stores cfg under the given profile name, overwriting
// any existing profile with that name.
func (s *Store) Save(name string, cfg types.InterfaceConfiguration) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if err := config.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("invalid profile configuration: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return err
	}
	profiles[name] = cfg
	if err := s.store(profiles); err != nil {
		return err
	}
	logging.WithComponent("profile").WithField("profile", name).Info("Profile saved")
	return nil
}

// Get returns the named profile.
func (s *Store) Get(name string) (types.InterfaceConfiguration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return types.InterfaceConfiguration{}, err
	}
	cfg, ok := profiles[name]
	if !ok {
		return types.InterfaceConfiguration{}, fmt.Errorf("profile %q does not exist", name)
	}
	return cfg, nil
}

// List returns all profile names in lexicographic order.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named profile. Deleting a missing profile is an error.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := profiles[name]; !ok {
		return fmt.Errorf("profile %q does not exist", name)
	}
	delete(profiles, name)
	return s.store(profiles)
}

func (s *Store) load() (map[string]types.InterfaceConfiguration, error) {
	if !s.files.FileExists(s.path) {
		return map[string]types.InterfaceConfiguration{}, nil
	}
	data, err := s.files.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}
	profiles := map[string]types.InterfaceConfiguration{}
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles file: %w", err)
	}
	return profiles, nil
}

func (s *Store) store(profiles map[string]types.InterfaceConfiguration) error {
	data, err := yaml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := s.files.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}
	return nil
}
