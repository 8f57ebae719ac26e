package domain

// Edge links one note to one tag. Note titles are denormalized into the
// edge so tag queries never reach into another module's tables.
type Edge struct {
	NoteID    string
	NoteTitle string
	TagSlug   string
	TagName   string
}

type TagSummary struct {
	Slug      string
	Name      string
	NoteCount int
}

type TaggedNote struct {
	NoteID string
	Title  string
}

// RelatedNote is a note reachable from another over shared tags. Via
// names the tag the search crossed first.
type RelatedNote struct {
	NoteID   string
	Title    string
	Distance int
	Via      string
}
