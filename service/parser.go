package service

import (
	"errors"
	"fmt"

	"crmviewer/domain"

	"github.com/buger/jsonparser"
)

// ParseRecordNames extracts records[].Name from a query response.
// records and every Name are required.
func ParseRecordNames(response domain.Response) ([]string, error) {
	records, err := requiredArray(response.Payload, "records")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0)
	err = eachObject(records, "records", func(record []byte) error {
		name, err := requiredString(record, "Name")
		if err != nil {
			return err
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ParseApps extracts apps[] from a ui-api/apps response.
// apps, developerName and appId are required.
func ParseApps(response domain.Response) ([]domain.App, error) {
	items, err := requiredArray(response.Payload, "apps")
	if err != nil {
		return nil, err
	}

	apps := make([]domain.App, 0)
	err = eachObject(items, "apps", func(item []byte) error {
		developerName, err := requiredString(item, "developerName")
		if err != nil {
			return err
		}
		appID, err := requiredString(item, "appId")
		if err != nil {
			return err
		}
		apps = append(apps, domain.App{DeveloperName: developerName, AppID: appID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ParseNavItems extracts navItems[] from a ui-api/apps/{appId} response.
// Both navItems and objectApiName are optional.
func ParseNavItems(response domain.Response) ([]domain.NavItem, error) {
	items, err := optionalArray(response.Payload, "navItems")
	if err != nil || items == nil {
		return []domain.NavItem{}, err
	}

	navItems := make([]domain.NavItem, 0)
	err = eachObject(items, "navItems", func(item []byte) error {
		objectAPIName, err := optionalString(item, "objectApiName")
		if err != nil {
			return err
		}
		navItems = append(navItems, domain.NavItem{ObjectAPIName: objectAPIName})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return navItems, nil
}

// ParseCatalog extracts sobjects[] from a describe-global response.
// sobjects and name are required; labelPlural is only needed for kept entries and
// is checked when labels are selected. Capability flags default to false.
func ParseCatalog(response domain.Response) ([]domain.ObjectDescriptor, error) {
	sobjects, err := requiredArray(response.Payload, "sobjects")
	if err != nil {
		return nil, err
	}

	catalog := make([]domain.ObjectDescriptor, 0)
	err = eachObject(sobjects, "sobjects", func(sobject []byte) error {
		var (
			d   domain.ObjectDescriptor
			err error
		)
		if d.APIName, err = requiredString(sobject, "name"); err != nil {
			return err
		}
		if d.LabelPlural, err = optionalString(sobject, "labelPlural"); err != nil {
			return err
		}
		if d.Createable, err = optionalBool(sobject, "createable"); err != nil {
			return err
		}
		if d.Searchable, err = optionalBool(sobject, "searchable"); err != nil {
			return err
		}
		if d.Layoutable, err = optionalBool(sobject, "layoutable"); err != nil {
			return err
		}
		if d.CustomSetting, err = optionalBool(sobject, "customSetting"); err != nil {
			return err
		}
		catalog = append(catalog, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

// lookup returns the raw value under key. Absent keys report jsonparser.NotExist without error.
func lookup(data []byte, key string) ([]byte, jsonparser.ValueType, error) {
	value, dataType, _, err := jsonparser.Get(data, key)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, jsonparser.NotExist, nil
	}
	if err != nil {
		return nil, dataType, NewParseError(fmt.Sprintf("malformed response, can't read %q", key), err)
	}
	return value, dataType, nil
}

func requiredArray(data []byte, key string) ([]byte, error) {
	value, dataType, err := lookup(data, key)
	if err != nil {
		return nil, err
	}
	if dataType != jsonparser.Array {
		return nil, NewParseError(fmt.Sprintf("response has no %q array", key), nil)
	}
	return value, nil
}

func optionalArray(data []byte, key string) ([]byte, error) {
	value, dataType, err := lookup(data, key)
	if err != nil {
		return nil, err
	}
	switch dataType {
	case jsonparser.NotExist, jsonparser.Null:
		return nil, nil
	case jsonparser.Array:
		return value, nil
	default:
		return nil, NewParseError(fmt.Sprintf("%q is not an array", key), nil)
	}
}

func requiredString(data []byte, key string) (string, error) {
	value, dataType, err := lookup(data, key)
	if err != nil {
		return "", err
	}
	if dataType != jsonparser.String {
		return "", NewParseError(fmt.Sprintf("missing string field %q", key), nil)
	}
	return parseString(value, key)
}

func optionalString(data []byte, key string) (string, error) {
	value, dataType, err := lookup(data, key)
	if err != nil {
		return "", err
	}
	switch dataType {
	case jsonparser.NotExist, jsonparser.Null:
		return "", nil
	case jsonparser.String:
		return parseString(value, key)
	default:
		return "", NewParseError(fmt.Sprintf("%q is not a string", key), nil)
	}
}

func optionalBool(data []byte, key string) (bool, error) {
	value, dataType, err := lookup(data, key)
	if err != nil {
		return false, err
	}
	switch dataType {
	case jsonparser.NotExist, jsonparser.Null:
		return false, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return false, NewParseError(fmt.Sprintf("malformed boolean %q", key), err)
		}
		return b, nil
	default:
		return false, NewParseError(fmt.Sprintf("%q is not a boolean", key), nil)
	}
}

func parseString(value []byte, key string) (string, error) {
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return "", NewParseError(fmt.Sprintf("malformed string %q", key), err)
	}
	return s, nil
}

// eachObject calls fn for every element of a JSON array, stopping at the first error.
// Elements that are not objects are a parse error.
func eachObject(array []byte, key string, fn func(object []byte) error) error {
	var fnErr error
	_, err := jsonparser.ArrayEach(array, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if fnErr != nil {
			return
		}
		if err != nil {
			fnErr = NewParseError(fmt.Sprintf("malformed %q entry", key), err)
			return
		}
		if dataType != jsonparser.Object {
			fnErr = NewParseError(fmt.Sprintf("%q entry is not an object", key), nil)
			return
		}
		fnErr = fn(value)
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return NewParseError(fmt.Sprintf("malformed %q array", key), err)
	}
	return nil
}
