package models

// SavedItemCategory classifies a saved item on the backend.
type SavedItemCategory string

const (
	CategoryPhrase     SavedItemCategory = "PHRASE"
	CategoryWord       SavedItemCategory = "WORD"
	CategorySentence   SavedItemCategory = "SENTENCE"
	CategoryParagraph  SavedItemCategory = "PARAGRAPH"
	CategoryTranscript SavedItemCategory = "TRANSCRIPT"
)

// SavedItemRecord is the server-side shape of a saved item. The local cache
// keeps flattened TranslationRecord copies; this type exists to decode
// gateway responses.
type SavedItemRecord struct {
	ID          string            `json:"id"`
	Translation TranslationRecord `json:"translation"`
	FolderID    string            `json:"folderId,omitempty"`
	FolderName  string            `json:"folderName,omitempty"`
	Name        string            `json:"name,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Category    SavedItemCategory `json:"category,omitempty"`
	CreatedAt   string            `json:"createdAt,omitempty"`
}
