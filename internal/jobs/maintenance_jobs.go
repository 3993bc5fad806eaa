package jobs

import (
	"context"
	"time"

	"rentora-backend/internal/logger"
)

// EscalateStaleMaintenance emails the property owner for every
// maintenance request that has been sitting unassigned past the
// configured age.
func (j *JobRunner) EscalateStaleMaintenance() {
	j.runWithRecovery("escalate_stale_maintenance", j.escalateStaleMaintenance)
}

func (j *JobRunner) escalateStaleMaintenance(ctx context.Context) error {
	staleDays := j.cfg.Scheduler.MaintenanceStaleDays
	cutoff := time.Now().UTC().AddDate(0, 0, -staleDays)

	requests, err := j.maintenance.ListStalePending(ctx, cutoff)
	if err != nil {
		return err
	}

	escalated := 0
	for _, req := range requests {
		prop, err := j.properties.GetByID(ctx, req.PropertyID)
		if err != nil {
			logger.Error("escalation skipped, property lookup failed",
				"maintenance_id", req.ID, "property_id", req.PropertyID, "error", err)
			continue
		}
		owner, err := j.profiles.GetByID(ctx, prop.OwnerID)
		if err != nil {
			logger.Error("escalation skipped, owner lookup failed",
				"maintenance_id", req.ID, "owner_id", prop.OwnerID, "error", err)
			continue
		}

		pendingDays := int(time.Since(req.CreatedAt).Hours() / 24)
		if err := j.email.SendMaintenanceEscalationNotification(ctx, owner.Email, prop.Name, req.Description, pendingDays); err != nil {
			logger.Error("escalation email failed",
				"maintenance_id", req.ID, "owner_email", owner.Email, "error", err)
			continue
		}
		escalated++
	}

	logger.Info("stale maintenance escalation complete",
		"stale", len(requests), "escalated", escalated)
	return nil
}
