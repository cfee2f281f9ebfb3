package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"crmviewer/domain"
	"crmviewer/interfaces"

	"github.com/go-kit/log/level"
)

// systemObjectSuffixes mark platform-generated companions of user objects.
var systemObjectSuffixes = []string{"__Share", "__History", "__Rule", "__ChangeEvent"}

// IsSystemObject reports whether apiName names a sharing/history/rule/change-event
// object or a custom setting.
func IsSystemObject(apiName string, customSetting bool) bool {
	if customSetting {
		return true
	}
	for _, suffix := range systemObjectSuffixes {
		if strings.HasSuffix(apiName, suffix) {
			return true
		}
	}
	return false
}

// IsLikelyUserObject reports whether d has a page layout and is searchable.
func IsLikelyUserObject(d domain.ObjectDescriptor) bool {
	return d.Layoutable && d.Searchable
}

// Include is the catalog predicate: createable, not a system object, likely a user object.
func Include(d domain.ObjectDescriptor) bool {
	return d.Createable && !IsSystemObject(d.APIName, d.CustomSetting) && IsLikelyUserObject(d)
}

// SelectLabels applies Include to catalog and, under DiscoveryPolicyIntersect,
// keeps only entries whose api-name is in accessible. The result is
// deduplicated and sorted ascending. A kept entry without labelPlural is a parse_error.
func SelectLabels(catalog []domain.ObjectDescriptor, accessible domain.AccessibleObjectSet, policy domain.DiscoveryPolicy) ([]string, error) {
	labels := make(map[string]struct{})
	for _, d := range catalog {
		if !Include(d) {
			continue
		}
		if policy != domain.DiscoveryPolicyCatalog && !accessible.Contains(d.APIName) {
			continue
		}
		if d.LabelPlural == "" {
			return nil, NewParseError(fmt.Sprintf("sobject %q has no labelPlural", d.APIName), nil)
		}
		labels[d.LabelPlural] = struct{}{}
	}

	out := make([]string, 0, len(labels))
	for label := range labels {
		out = append(out, label)
	}
	sort.Strings(out)
	return out, nil
}

// DescribeObjects implements interfaces.Repository.
//
// Under the intersect policy it resolves the target app, collects the object
// types of its navigation items, then filters the global catalog down to them.
// Under the catalog policy the app lookup is skipped. The first failing stage
// aborts the whole operation.
func (r *Repository) DescribeObjects(ctx context.Context) ([]string, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	var accessible domain.AccessibleObjectSet
	if r.config.Policy != domain.DiscoveryPolicyCatalog {
		accessible, err = r.accessibleObjects(ctx, client)
		if err != nil {
			level.Error(r.logger).Log("msg", "Could not get accessible objects", "app", r.config.TargetApp, "err", err)
			return nil, err
		}
	}

	response, err := Send(ctx, client, r.queries.DescribeGlobal())
	if err != nil {
		level.Error(r.logger).Log("msg", "Describe global failed", "err", err)
		return nil, fmt.Errorf("describeObjects failed to describe global, err: %w", err)
	}
	catalog, err := ParseCatalog(response)
	if err != nil {
		return nil, fmt.Errorf("describeObjects failed to parse catalog, err: %w", err)
	}

	labels, err := SelectLabels(catalog, accessible, r.config.Policy)
	if err != nil {
		return nil, fmt.Errorf("describeObjects failed to select labels, err: %w", err)
	}
	level.Info(r.logger).Log(
		"msg", "Objects discovered",
		"policy", r.config.Policy,
		"catalog", len(catalog),
		"accessible", len(accessible),
		"labels", len(labels),
	)
	return labels, nil
}

// resolveApp finds the configured target app in the user's app list.
func (r *Repository) resolveApp(ctx context.Context, client interfaces.RestClient) (domain.App, error) {
	response, err := Send(ctx, client, r.queries.Apps(r.config.FormFactor))
	if err != nil {
		return domain.App{}, fmt.Errorf("resolveApp failed to fetch the list of apps, err: %w", err)
	}
	apps, err := ParseApps(response)
	if err != nil {
		return domain.App{}, fmt.Errorf("resolveApp failed to parse the list of apps, err: %w", err)
	}

	for _, app := range apps {
		if app.DeveloperName == r.config.TargetApp {
			level.Debug(r.logger).Log("msg", "Found app", "app", app.DeveloperName, "app_id", app.AppID)
			return app, nil
		}
	}
	return domain.App{}, NewAppNotFoundError(r.config.TargetApp)
}

// accessibleObjects returns the object api-names bound to the target app's navigation items.
// An app without object-bound items yields an empty set.
func (r *Repository) accessibleObjects(ctx context.Context, client interfaces.RestClient) (domain.AccessibleObjectSet, error) {
	app, err := r.resolveApp(ctx, client)
	if err != nil {
		return nil, err
	}

	response, err := Send(ctx, client, r.queries.App(app.AppID, r.config.FormFactor))
	if err != nil {
		return nil, fmt.Errorf("accessibleObjects failed to fetch app %s, err: %w", app.AppID, err)
	}
	navItems, err := ParseNavItems(response)
	if err != nil {
		return nil, fmt.Errorf("accessibleObjects failed to parse app %s, err: %w", app.AppID, err)
	}

	accessible := domain.NewAccessibleObjectSet(navItems)
	if len(accessible) == 0 {
		level.Warn(r.logger).Log("msg", "App has no object navigation items", "app", app.DeveloperName)
	}
	return accessible, nil
}
