// Package models defines client-side data models shared by the local cache
// stores, the reconciliation services and the remote gateway.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InputType records how a translation was produced. Provenance only, no
// behavioral effect.
type InputType string

const (
	InputTypeText  InputType = "TEXT"
	InputTypeVoice InputType = "VOICE"
	InputTypeImage InputType = "IMAGE"
)

// LocalIDPrefix marks ids generated on the device before the backend has
// assigned a permanent one.
const LocalIDPrefix = "local_"

// NewLocalID returns a fresh placeholder id. The prefix is the contract;
// the uuid suffix keeps rapid creations collision-free.
func NewLocalID() string {
	return LocalIDPrefix + uuid.NewString()
}

// IsLocalID reports whether id is a placeholder that has not been replaced
// by a server-assigned id yet.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// NowMillis returns the current instant as epoch milliseconds, the unit used
// for every Timestamp field in the cache.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// TranslationRecord is the canonical unit flowing through every store.
//
// A record may legitimately exist both in the history cache and in the
// saved-items cache under the same id; those are two independently-owned
// copies, not a shared reference.
type TranslationRecord struct {
	// ID is server-assigned once synced; a local_ placeholder before.
	ID string `json:"id"`

	SourceText string `json:"sourceText"`
	TargetText string `json:"targetText"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`

	// Timestamp is the creation/update instant in epoch millis; governs ordering.
	Timestamp int64 `json:"timestamp"`

	IsFavorite bool `json:"isFavorite"`

	// IsSaved is true once the record has been filed into any folder.
	IsSaved bool `json:"isSaved"`

	// FolderID is a weak reference to at most one folder; empty = unfiled.
	FolderID string `json:"folderId,omitempty"`

	InputType InputType `json:"inputType"`

	// IsSynced is true once the backend acknowledged the record.
	IsSynced bool `json:"isSynced"`
}

// Synced reports whether the record carries a server-assigned id.
func (r TranslationRecord) Synced() bool {
	return r.IsSynced && !IsLocalID(r.ID)
}
