package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_KindPrefix(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{KindAccount, "acc_"},
		{KindTransaction, "tx_"},
		{KindFixedCost, "fc_"},
	}
	for _, tt := range tests {
		got := New(tt.kind)
		assert.True(t, strings.HasPrefix(got, tt.want), "id %q should start with %q", got, tt.want)
		assert.Len(t, got, len(tt.kind)+1+36, "kind tag + underscore + uuid")
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := New(KindTransaction)
		assert.False(t, seen[got], "duplicate id %q", got)
		seen[got] = true
	}
}
