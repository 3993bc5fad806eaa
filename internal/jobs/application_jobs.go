package jobs

import (
	"context"
	"time"

	"rentora-backend/internal/logger"
)

// RemindPendingApplications nudges property owners about applications
// that have been waiting on a decision past the configured age.
func (j *JobRunner) RemindPendingApplications() {
	j.runWithRecovery("remind_pending_applications", j.remindPendingApplications)
}

func (j *JobRunner) remindPendingApplications(ctx context.Context) error {
	staleDays := j.cfg.Scheduler.ApplicationStaleDays
	cutoff := time.Now().UTC().AddDate(0, 0, -staleDays)

	apps, err := j.applications.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	reminded := 0
	for _, app := range apps {
		prop, err := j.properties.GetByID(ctx, app.PropertyID)
		if err != nil {
			logger.Error("reminder skipped, property lookup failed",
				"application_id", app.ID, "property_id", app.PropertyID, "error", err)
			continue
		}
		owner, err := j.profiles.GetByID(ctx, prop.OwnerID)
		if err != nil {
			logger.Error("reminder skipped, owner lookup failed",
				"application_id", app.ID, "owner_id", prop.OwnerID, "error", err)
			continue
		}

		applicant := app.FirstName + " " + app.LastName
		if err := j.email.SendApplicationReceivedNotification(ctx, owner.Email, applicant, prop.Name); err != nil {
			logger.Error("reminder email failed",
				"application_id", app.ID, "owner_email", owner.Email, "error", err)
			continue
		}
		reminded++
	}

	logger.Info("pending application reminders complete",
		"pending", len(apps), "reminded", reminded)
	return nil
}
