package domain

import "fmt"

// ObjectDescriptor is one entry of the global describe (sobjects) catalog.
type ObjectDescriptor struct {
	APIName       string
	LabelPlural   string
	Createable    bool
	Searchable    bool
	Layoutable    bool
	CustomSetting bool
}

// App is one entry of the ui-api application list.
type App struct {
	DeveloperName string
	AppID         string
}

// NavItem is a navigation entry of an application. ObjectAPIName is empty
// when the item is not bound to an object type (home page, custom tab...).
type NavItem struct {
	ObjectAPIName string
}

// AccessibleObjectSet holds object api-names reachable through an app's navigation.
type AccessibleObjectSet map[string]struct{}

// NewAccessibleObjectSet builds a set from the object-bound nav items; unbound items are skipped.
func NewAccessibleObjectSet(items []NavItem) AccessibleObjectSet {
	set := make(AccessibleObjectSet, len(items))
	for _, item := range items {
		if item.ObjectAPIName == "" {
			continue
		}
		set[item.ObjectAPIName] = struct{}{}
	}
	return set
}

// Contains reports whether apiName is in the set.
func (s AccessibleObjectSet) Contains(apiName string) bool {
	_, ok := s[apiName]
	return ok
}

// DiscoveryPolicy selects how app navigation and catalog permissions are combined.
type DiscoveryPolicy string

const (
	// DiscoveryPolicyIntersect keeps catalog entries that are also in the target app navigation.
	DiscoveryPolicyIntersect DiscoveryPolicy = "intersect"
	// DiscoveryPolicyCatalog ignores app navigation and filters the catalog alone.
	DiscoveryPolicyCatalog DiscoveryPolicy = "catalog"
)

// ParseDiscoveryPolicy parses s; empty string means DiscoveryPolicyIntersect.
func ParseDiscoveryPolicy(s string) (DiscoveryPolicy, error) {
	switch DiscoveryPolicy(s) {
	case "", DiscoveryPolicyIntersect:
		return DiscoveryPolicyIntersect, nil
	case DiscoveryPolicyCatalog:
		return DiscoveryPolicyCatalog, nil
	default:
		return "", fmt.Errorf("discovery policy must be intersect|catalog, got %q", s)
	}
}
