package service

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"crmviewer/domain"

	"github.com/Masterminds/semver/v3"
)

// minAPIVersion is the first REST API version exposing ui-api/apps.
const minAPIVersion = ">= 42.0"

// QueryBuilder builds domain.Query values bound to one REST API version.
// It holds no state besides the version and is safe for concurrent use.
type QueryBuilder struct {
	version string
}

// NewQueryBuilder validates apiVersion ("61.0", "v61.0") and returns a builder for it.
func NewQueryBuilder(apiVersion string) (*QueryBuilder, error) {
	v, err := semver.NewVersion(strings.TrimSpace(apiVersion))
	if err != nil {
		return nil, fmt.Errorf("invalid api version %q: %w", apiVersion, err)
	}
	constraint, err := semver.NewConstraint(minAPIVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid api version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return nil, fmt.Errorf("api version %q is not supported, need %s", apiVersion, minAPIVersion)
	}

	return &QueryBuilder{version: fmt.Sprintf("v%d.%d", v.Major(), v.Minor())}, nil
}

// Version returns the normalised API version, e.g. "v61.0".
func (b *QueryBuilder) Version() string {
	return b.version
}

// SOQL returns a query-endpoint request for soql.
func (b *QueryBuilder) SOQL(soql string) domain.Query {
	return b.Path(http.MethodGet, "query?"+url.Values{"q": {soql}}.Encode())
}

// DescribeGlobal returns the global describe (sobjects catalog) request.
func (b *QueryBuilder) DescribeGlobal() domain.Query {
	return b.Path(http.MethodGet, "sobjects/")
}

// Apps returns the request listing the applications available to the user.
func (b *QueryBuilder) Apps(formFactor string) domain.Query {
	return b.Path(http.MethodGet, "ui-api/apps?"+formFactorQuery(formFactor))
}

// App returns the metadata request of one application.
func (b *QueryBuilder) App(appID string, formFactor string) domain.Query {
	return b.Path(http.MethodGet, "ui-api/apps/"+url.PathEscape(appID)+"?"+formFactorQuery(formFactor))
}

// Path returns a request for a path below the versioned data root, e.g. "ui-api/apps".
// Every other query of the builder is built on it.
func (b *QueryBuilder) Path(method string, relative string) domain.Query {
	query := domain.NewGetQuery(b.basePath() + "/" + strings.TrimPrefix(relative, "/"))
	if method != "" {
		query.Method = method
	}
	return query
}

func (b *QueryBuilder) basePath() string {
	return "/services/data/" + b.version
}

func formFactorQuery(formFactor string) string {
	return url.Values{"formFactor": {formFactor}}.Encode()
}
