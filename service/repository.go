package service

import (
	"context"
	"fmt"

	"crmviewer/domain"
	"crmviewer/helpers"
	"crmviewer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	defaultTargetApp     = "LightningSales"
	defaultFormFactor    = "Large"
	defaultContactsQuery = "SELECT Name FROM Contact"
	defaultAccountsQuery = "SELECT Name FROM Account"
)

// RepositoryConfig holds what the repository queries.
type RepositoryConfig struct {
	// TargetApp is the developer name of the app whose navigation scopes object discovery.
	TargetApp string
	// FormFactor is passed to ui-api (Large, Medium, Small).
	FormFactor string
	// Policy combines app navigation and catalog permissions.
	Policy        domain.DiscoveryPolicy
	ContactsQuery string
	AccountsQuery string
}

// DefaultRepositoryConfig returns the default repository configuration.
func DefaultRepositoryConfig() RepositoryConfig {
	return RepositoryConfig{
		TargetApp:     defaultTargetApp,
		FormFactor:    defaultFormFactor,
		Policy:        domain.DiscoveryPolicyIntersect,
		ContactsQuery: defaultContactsQuery,
		AccountsQuery: defaultAccountsQuery,
	}
}

// Repository implements interfaces.Repository on top of the CRM REST API.
// Every call checks for a client first and fails with no_session, without any
// request, while the host has not provided one. Nothing is cached between calls.
type Repository struct {
	clients interfaces.ClientProvider
	queries *QueryBuilder
	config  RepositoryConfig
	logger  log.Logger
}

// NewRepository creates a Repository. Empty config fields take their defaults. Panics on nil clients, queries or logger.
func NewRepository(clients interfaces.ClientProvider, queries *QueryBuilder, config RepositoryConfig, logger log.Logger) *Repository {
	defaults := DefaultRepositoryConfig()
	if config.TargetApp == "" {
		config.TargetApp = defaults.TargetApp
	}
	if config.FormFactor == "" {
		config.FormFactor = defaults.FormFactor
	}
	if config.Policy == "" {
		config.Policy = defaults.Policy
	}
	if config.ContactsQuery == "" {
		config.ContactsQuery = defaults.ContactsQuery
	}
	if config.AccountsQuery == "" {
		config.AccountsQuery = defaults.AccountsQuery
	}

	return &Repository{
		clients: helpers.NilPanic(clients, "service.repository.go: client provider is required"),
		queries: helpers.NilPanic(queries, "service.repository.go: query builder is required"),
		config:  config,
		logger:  log.WithPrefix(helpers.NilPanic(logger, "service.repository.go: logger is required"), "component", "Repository"),
	}
}

// ContactNames implements interfaces.Repository.
func (r *Repository) ContactNames(ctx context.Context) ([]string, error) {
	return r.RecordNames(ctx, r.config.ContactsQuery)
}

// AccountNames implements interfaces.Repository.
func (r *Repository) AccountNames(ctx context.Context) ([]string, error) {
	return r.RecordNames(ctx, r.config.AccountsQuery)
}

// RecordNames implements interfaces.Repository.
func (r *Repository) RecordNames(ctx context.Context, soql string) ([]string, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	response, err := Send(ctx, client, r.queries.SOQL(soql))
	if err != nil {
		return nil, fmt.Errorf("recordNames failed to run query, err: %w", err)
	}

	names, err := ParseRecordNames(response)
	if err != nil {
		return nil, fmt.Errorf("recordNames failed to parse records, err: %w", err)
	}

	level.Debug(r.logger).Log("msg", "records fetched", "count", len(names))
	return names, nil
}

func (r *Repository) client() (interfaces.RestClient, error) {
	client, ok := r.clients.Client()
	if !ok || client == nil {
		return nil, NewNoSessionError()
	}
	return client, nil
}
