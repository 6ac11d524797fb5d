package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/acm/internal/config"
	"github.com/deppfellow/acm/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type accessMailer interface {
	SendModuleAccessEmail(to string, data email.ModuleAccessData) error
}

// InitHandlers wires the dependencies job handlers need. Without a Resend
// key and a notification address the email client is left unset and
// access change tasks are acknowledged without sending anything.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Integration.NotificationsEnabled() {
		logger.Info().Msg("access change emails disabled")
		return
	}
	j.mailer = email.NewClient(cfg, logger)
	j.notificationEmail = cfg.Integration.NotificationEmail
}

func (j *JobService) handleModulesChangedTask(ctx context.Context, t *asynq.Task) error {
	var p ModulesChangedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal modules changed payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskModulesChanged).
		Int64("employee_id", p.EmployeeID).
		Logger()

	if j.mailer == nil {
		log.Debug().Msg("no mailer configured, skipping access change email")
		return nil
	}

	log.Info().Msg("processing access change email task")

	err := j.mailer.SendModuleAccessEmail(j.notificationEmail, email.ModuleAccessData{
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Granted:      p.Granted,
		Revoked:      p.Revoked,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send access change email")
		return err
	}

	log.Info().Msg("sent access change email")

	return nil
}
