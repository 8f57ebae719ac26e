package dto

// ExportFileOutput points at a file the export wrote.
type ExportFileOutput struct {
	NoteID string `json:"note_id,omitempty"`
	Path   string `json:"path"`
}
