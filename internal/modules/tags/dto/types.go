package dto

type TagOutput struct {
	Slug      string
	Name      string
	NoteCount int
}

type TaggedNoteOutput struct {
	NoteID string
	Title  string
}

type RelatedNoteOutput struct {
	NoteID   string
	Title    string
	Distance int
	Via      string
}
