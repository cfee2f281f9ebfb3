package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty, otherwise returns p.
// Constructors use it for required strings such as the instance URL or the target app name.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil, including typed nil pointers,
// slices, maps, channels, funcs and interfaces. Otherwise v is returned unchanged.
//
// Called from service.NewRepository, service.NewStateHolder, service.NewSessionManager,
// adapters/restclient.New and handlers.NewHTTPServer when validating required dependencies.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
