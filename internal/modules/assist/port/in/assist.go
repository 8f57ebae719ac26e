package in

import (
	"context"

	"inkwell/internal/modules/assist/dto"
)

type Usecase interface {
	// Actions lists the built-in actions plus whatever the configured
	// provider contributes on top.
	Actions(ctx context.Context) ([]dto.ActionOutput, error)
	Transform(ctx context.Context, input dto.TransformInput) (dto.TransformOutput, error)
	Doctor(ctx context.Context) ([]dto.ProviderCheckOutput, error)
}
