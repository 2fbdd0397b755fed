package gateway

import (
	"time"

	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
)

// State is the position of an inbound call in its lifecycle.
type State int

const (
	StateUnauthenticated State = iota
	StateTokenChecked
	StateCapabilityChecked
	StateDispatched
	StateResponded
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateTokenChecked:
		return "token_checked"
	case StateCapabilityChecked:
		return "capability_checked"
	case StateDispatched:
		return "dispatched"
	case StateResponded:
		return "responded"
	default:
		return "unknown"
	}
}

// Call carries one inbound operation through authorization and dispatch.
// A rejected call goes straight to StateResponded.
type Call struct {
	Op        string
	State     State
	Principal *domain.Principal

	logger  *zap.Logger
	started time.Time
}

func newCall(op string, logger *zap.Logger) *Call {
	return &Call{
		Op:      op,
		State:   StateUnauthenticated,
		logger:  logger.With(zap.String("op", op)),
		started: time.Now(),
	}
}

func (c *Call) advance(to State) {
	c.logger.Debug("call state",
		zap.Stringer("from", c.State),
		zap.Stringer("to", to),
	)
	c.State = to
}

func (c *Call) finish(err error) {
	from := c.State
	c.State = StateResponded

	fields := []zap.Field{
		zap.Stringer("from", from),
		zap.Duration("duration", time.Since(c.started)),
	}
	if c.Principal != nil {
		fields = append(fields, zap.Int64("principal_id", c.Principal.ID))
	}
	if err != nil {
		c.logger.Info("call rejected", append(fields, zap.Error(err))...)
		return
	}
	c.logger.Debug("call responded", fields...)
}
