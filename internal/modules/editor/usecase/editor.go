package usecase

import (
	"context"

	"inkwell/internal/modules/editor/domain"
	"inkwell/internal/modules/editor/dto"
	editorin "inkwell/internal/modules/editor/port/in"
	"inkwell/internal/modules/editor/service"
)

type Interactor struct {
	svc *service.EditorService
}

func NewInteractor(svc *service.EditorService) editorin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) OnEdit(ctx context.Context, documentID string, before dto.SnapshotInput, fn func(context.Context) error) error {
	return i.svc.OnEdit(ctx, documentID, domain.Snapshot{Title: before.Title, Content: before.Content}, fn)
}

func (i *Interactor) Undo(ctx context.Context, documentID string, current dto.SnapshotInput) (dto.SnapshotOutput, bool, error) {
	snap, ok, err := i.svc.Undo(ctx, documentID, domain.Snapshot{Title: current.Title, Content: current.Content})
	if err != nil || !ok {
		return dto.SnapshotOutput{}, false, err
	}
	return dto.SnapshotOutput{Title: snap.Title, Content: snap.Content}, true, nil
}

func (i *Interactor) Redo(ctx context.Context, documentID string, current dto.SnapshotInput) (dto.SnapshotOutput, bool, error) {
	snap, ok, err := i.svc.Redo(ctx, documentID, domain.Snapshot{Title: current.Title, Content: current.Content})
	if err != nil || !ok {
		return dto.SnapshotOutput{}, false, err
	}
	return dto.SnapshotOutput{Title: snap.Title, Content: snap.Content}, true, nil
}

func (i *Interactor) CanUndo(documentID string) bool {
	return i.svc.CanUndo(documentID)
}

func (i *Interactor) CanRedo(documentID string) bool {
	return i.svc.CanRedo(documentID)
}

func (i *Interactor) Status(documentID string) dto.HistoryStatusOutput {
	past, future := i.svc.Depths(documentID)
	return dto.HistoryStatusOutput{
		CanUndo:     past > 0,
		CanRedo:     future > 0,
		PastDepth:   past,
		FutureDepth: future,
	}
}

func (i *Interactor) Checkpoint(documentID string, current dto.SnapshotInput) {
	i.svc.Checkpoint(documentID, domain.Snapshot{Title: current.Title, Content: current.Content})
}

func (i *Interactor) OnFocusChange(documentID string) {
	i.svc.OnFocusChange(documentID)
}

func (i *Interactor) OnDocumentDeleted(documentID string) {
	i.svc.OnDocumentDeleted(documentID)
}
