package dto

type SnapshotInput struct {
	Title   string
	Content string
}

type SnapshotOutput struct {
	Title   string
	Content string
}

type HistoryStatusOutput struct {
	CanUndo     bool
	CanRedo     bool
	PastDepth   int
	FutureDepth int
}
