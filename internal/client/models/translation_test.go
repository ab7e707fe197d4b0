package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalID(t *testing.T) {
	id1 := NewLocalID()
	id2 := NewLocalID()

	require.True(t, IsLocalID(id1))
	require.True(t, IsLocalID(id2))
	assert.NotEqual(t, id1, id2)
}

func TestIsLocalID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"placeholder", "local_123", true},
		{"server id", "42", false},
		{"empty", "", false},
		{"prefix only", "local_", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsLocalID(tc.id))
		})
	}
}

func TestTranslationRecord_Synced(t *testing.T) {
	r := TranslationRecord{ID: NewLocalID()}
	assert.False(t, r.Synced())

	r = TranslationRecord{ID: "42", IsSynced: true}
	assert.True(t, r.Synced())

	// acknowledged flag without a server id still counts as unsynced
	r = TranslationRecord{ID: NewLocalID(), IsSynced: true}
	assert.False(t, r.Synced())
}
