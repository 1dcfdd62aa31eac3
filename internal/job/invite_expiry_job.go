package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kanban-workspace-api/internal/service"
)

// InviteExpiryJob marks pending invites past their expiry as EXPIRED
type InviteExpiryJob struct {
	inviteService service.InviteService
	logger        *zap.Logger
	now           func() time.Time
}

// NewInviteExpiryJob creates a new InviteExpiryJob instance
func NewInviteExpiryJob(inviteService service.InviteService, logger *zap.Logger) *InviteExpiryJob {
	return &InviteExpiryJob{
		inviteService: inviteService,
		logger:        logger,
		now:           time.Now,
	}
}

// Run executes one expiry sweep
func (j *InviteExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	expired, err := j.inviteService.ExpireStale(ctx, j.now())
	if err != nil {
		j.logger.Error("Invite expiry sweep failed", zap.Error(err))
		return
	}

	if expired == 0 {
		j.logger.Debug("Invite expiry sweep found nothing to expire")
		return
	}

	j.logger.Info("Invite expiry sweep completed",
		zap.Int("expired", expired),
	)
}

// Schedule registers the job on a cron scheduler using the given spec
// and starts it. The returned cron must be stopped on shutdown.
func (j *InviteExpiryJob) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddJob(spec, j); err != nil {
		return nil, err
	}
	c.Start()

	j.logger.Info("Invite expiry sweep scheduled",
		zap.String("spec", spec),
	)
	return c, nil
}
