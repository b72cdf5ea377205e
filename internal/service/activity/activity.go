package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/samape/samape/internal/domain"
)

// Logger is the fire-and-forget activity sink. Entries go to the structured
// log; a failure to record never fails the operation that produced it.
type Logger struct{}

func New() *Logger {
	return &Logger{}
}

func (l *Logger) Record(_ context.Context, principal domain.Principal, action, details string) {
	zap.L().Info("activity",
		zap.Int("user_id", principal.UserID),
		zap.String("role", principal.Role),
		zap.String("action", action),
		zap.String("details", details),
	)
}
