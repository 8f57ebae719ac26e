package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/modules/assist/domain"
	assistout "inkwell/internal/modules/assist/port/out"
	apperrors "inkwell/internal/platform/errors"

	"github.com/patrickmn/go-cache"
)

const (
	resultTTL   = 30 * time.Minute
	resultSweep = 10 * time.Minute
)

type AssistService struct {
	provider assistout.TextTransformer
	results  *cache.Cache
}

// NewAssistService accepts a nil provider; every transform then fails
// with ErrProviderUnavailable while listing keeps working.
func NewAssistService(provider assistout.TextTransformer) *AssistService {
	return &AssistService{
		provider: provider,
		results:  cache.New(resultTTL, resultSweep),
	}
}

func (s *AssistService) ProviderName() string {
	if s.provider == nil {
		return "none"
	}
	return s.provider.Name()
}

func (s *AssistService) Actions(ctx context.Context) ([]domain.Action, error) {
	actions := domain.Builtins()
	lister, ok := s.provider.(assistout.ActionLister)
	if !ok {
		return actions, nil
	}
	extras, err := lister.Actions(ctx)
	if err != nil {
		// A dead provider must not hide the built-ins.
		return actions, nil
	}
	seen := map[string]struct{}{}
	for _, action := range actions {
		seen[action.ID] = struct{}{}
	}
	for _, extra := range extras {
		if _, ok := seen[extra.ID]; ok {
			continue
		}
		actions = append(actions, extra)
	}
	return actions, nil
}

func (s *AssistService) Transform(ctx context.Context, actionID, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is required", apperrors.ErrInvalidInput)
	}
	if s.provider == nil {
		return "", fmt.Errorf("%w: set ai.provider in config", apperrors.ErrProviderUnavailable)
	}
	action, err := s.findAction(ctx, actionID)
	if err != nil {
		return "", err
	}

	key := resultKey(action.ID, text)
	if cached, found := s.results.Get(key); found {
		return cached.(string), nil
	}

	out, err := s.provider.Transform(ctx, action, text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("provider returned an empty result")
	}
	s.results.Set(key, out, cache.DefaultExpiration)
	return out, nil
}

func (s *AssistService) Doctor(ctx context.Context) ([]domain.ProviderCheck, error) {
	if s.provider == nil {
		return []domain.ProviderCheck{{Target: "ai.provider", OK: false, Detail: "no provider configured"}}, nil
	}
	return s.provider.Doctor(ctx), nil
}

func (s *AssistService) findAction(ctx context.Context, actionID string) (domain.Action, error) {
	actions, err := s.Actions(ctx)
	if err != nil {
		return domain.Action{}, err
	}
	for _, action := range actions {
		if action.ID == actionID {
			return action, nil
		}
	}
	return domain.Action{}, fmt.Errorf("%w: %s", apperrors.ErrActionUnknown, actionID)
}

func resultKey(actionID, text string) string {
	hash := sha256.Sum256([]byte(actionID + "\x00" + text))
	return hex.EncodeToString(hash[:])
}
