package locator

import (
	"errors"

	"github.com/justradojko/intellij-community/internal/models"
)

// Decide maps a resolution result onto an outcome. Line and column never
// take part: they are navigation hints consumed after the decision.
func Decide(resolveErr error, loc models.ResolvedLocation) models.Outcome {
	switch {
	case errors.Is(resolveErr, ErrEmptyPath):
		return models.OutcomeBadRequest
	case resolveErr != nil, !loc.Exists:
		return models.OutcomeNotFound
	default:
		return models.OutcomeOK
	}
}
