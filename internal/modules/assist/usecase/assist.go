package usecase

import (
	"context"

	"inkwell/internal/modules/assist/dto"
	assistin "inkwell/internal/modules/assist/port/in"
	"inkwell/internal/modules/assist/service"
)

type Interactor struct {
	svc *service.AssistService
}

func NewInteractor(svc *service.AssistService) assistin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Actions(ctx context.Context) ([]dto.ActionOutput, error) {
	actions, err := i.svc.Actions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActionOutput, 0, len(actions))
	for _, action := range actions {
		out = append(out, dto.ActionOutput{ID: action.ID, Title: action.Title})
	}
	return out, nil
}

func (i *Interactor) Transform(ctx context.Context, input dto.TransformInput) (dto.TransformOutput, error) {
	text, err := i.svc.Transform(ctx, input.ActionID, input.Text)
	if err != nil {
		return dto.TransformOutput{}, err
	}
	return dto.TransformOutput{
		ActionID: input.ActionID,
		Provider: i.svc.ProviderName(),
		Text:     text,
	}, nil
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.ProviderCheckOutput, error) {
	checks, err := i.svc.Doctor(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderCheckOutput, 0, len(checks))
	for _, check := range checks {
		out = append(out, dto.ProviderCheckOutput{Target: check.Target, OK: check.OK, Detail: check.Detail})
	}
	return out, nil
}
