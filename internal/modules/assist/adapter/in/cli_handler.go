package in

import (
	"context"

	"inkwell/internal/modules/assist/dto"
	assistin "inkwell/internal/modules/assist/port/in"
)

type CLIHandler struct {
	uc assistin.Usecase
}

func NewCLIHandler(uc assistin.Usecase) CLIHandler {
	return CLIHandler{uc: uc}
}

func (h CLIHandler) Actions(ctx context.Context) ([]dto.ActionOutput, error) {
	return h.uc.Actions(ctx)
}

func (h CLIHandler) Transform(ctx context.Context, actionID, text string) (dto.TransformOutput, error) {
	return h.uc.Transform(ctx, dto.TransformInput{ActionID: actionID, Text: text})
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.ProviderCheckOutput, error) {
	return h.uc.Doctor(ctx)
}
