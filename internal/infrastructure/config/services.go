package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/favbuddy/internal/infrastructure/favicon"
)

var (
	// ErrServiceNotFound is returned when no service matches a name or index.
	ErrServiceNotFound = errors.New("icon service not found")
	// ErrServiceExists is returned when adding a service whose name is taken.
	ErrServiceExists = errors.New("icon service already exists")
	// ErrDefaultService is returned when removing the built-in default service.
	ErrDefaultService = errors.New("default icon service cannot be removed")
)

// ServiceList is the portable form of the icon service configuration.
type ServiceList struct {
	Services            []IconService `json:"services"`
	CurrentServiceIndex int           `json:"current_service_index"`
}

// FindService returns the index of the service named (case-insensitive) or
// numbered by ref.
func (c *Config) FindService(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if idx, err := strconv.Atoi(ref); err == nil {
		if idx >= 0 && idx < len(c.Favicon.Services) {
			return idx, nil
		}
		return -1, fmt.Errorf("%w: index %d", ErrServiceNotFound, idx)
	}
	for i, svc := range c.Favicon.Services {
		if strings.EqualFold(svc.Name, ref) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrServiceNotFound, ref)
}

// UseService selects the service referenced by ref.
func (c *Config) UseService(ref string) error {
	idx, err := c.FindService(ref)
	if err != nil {
		return err
	}
	c.Favicon.CurrentService = idx
	return nil
}

// AddService appends a custom service.
func (c *Config) AddService(name, urlTemplate string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("service name cannot be empty")
	}
	if !strings.Contains(urlTemplate, favicon.DomainPlaceholder) {
		return fmt.Errorf("url template must contain %s", favicon.DomainPlaceholder)
	}
	if _, err := c.FindService(name); err == nil {
		return fmt.Errorf("%w: %s", ErrServiceExists, name)
	}

	c.Favicon.Services = append(c.Favicon.Services, IconService{Name: name, URLTemplate: urlTemplate})
	return nil
}

// RemoveService deletes a non-default service, keeping the selection valid.
func (c *Config) RemoveService(ref string) error {
	idx, err := c.FindService(ref)
	if err != nil {
		return err
	}
	if c.Favicon.Services[idx].IsDefault {
		return fmt.Errorf("%w: %s", ErrDefaultService, c.Favicon.Services[idx].Name)
	}

	c.Favicon.Services = append(c.Favicon.Services[:idx], c.Favicon.Services[idx+1:]...)
	switch {
	case c.Favicon.CurrentService == idx:
		c.Favicon.CurrentService = c.defaultServiceIndex()
	case c.Favicon.CurrentService > idx:
		c.Favicon.CurrentService--
	}
	return nil
}

func (c *Config) defaultServiceIndex() int {
	for i, svc := range c.Favicon.Services {
		if svc.IsDefault {
			return i
		}
	}
	return 0
}

// ExportServices writes the service list as JSON.
func (c *Config) ExportServices(path string) error {
	data, err := json.MarshalIndent(ServiceList{
		Services:            c.Favicon.Services,
		CurrentServiceIndex: c.Favicon.CurrentService,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, filePerm)
}

// ImportServices replaces the service list with the one stored at path.
func (c *Config) ImportServices(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read services: %w", err)
	}

	var list ServiceList
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse services: %w", err)
	}

	candidate := *c
	candidate.Favicon.Services = list.Services
	candidate.Favicon.CurrentService = list.CurrentServiceIndex
	if err := validateServices(&candidate); len(err) > 0 {
		return fmt.Errorf("invalid services file: %s", strings.Join(err, "; "))
	}

	c.Favicon.Services = list.Services
	c.Favicon.CurrentService = list.CurrentServiceIndex
	return nil
}
