package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrPanic(t *testing.T) {
	assert.PanicsWithValue(t, "instance url is required", func() {
		StrPanic("", "instance url is required")
	})
	require.Equal(t, "https://example.my.salesforce.com", StrPanic("https://example.my.salesforce.com", "instance url is required"))
}

func TestNilPanic(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{name: "nil_interface", call: func() { NilPanic[any](nil, "required") }},
		{name: "nil_pointer", call: func() { NilPanic[*int](nil, "required") }},
		{name: "nil_func", call: func() { NilPanic[func()](nil, "required") }},
		{name: "nil_map", call: func() { NilPanic[map[string]int](nil, "required") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, "required", tt.call)
		})
	}

	t.Run("non_nil_returns_value", func(t *testing.T) {
		x := 7
		got := NilPanic(&x, "required")
		require.Same(t, &x, got)
		assert.Equal(t, "ok", NilPanic("ok", "required"))
	})
}
