package authz

import (
	"testing"

	"rentora-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanDecideApplication(t *testing.T) {
	assert.True(t, CanDecideApplication(domain.RoleAdmin, "admin-1", "mgr-1"))
	assert.True(t, CanDecideApplication(domain.RolePropertyManager, "mgr-1", "mgr-1"))
	assert.False(t, CanDecideApplication(domain.RolePropertyManager, "mgr-2", "mgr-1"))
	assert.False(t, CanDecideApplication(domain.RoleTenant, "mgr-1", "mgr-1"))
	assert.False(t, CanDecideApplication(domain.RoleCaretaker, "mgr-1", "mgr-1"))
}

func TestCanCreateLease(t *testing.T) {
	assert.True(t, CanCreateLease(domain.RoleAdmin, "admin-1", "mgr-1"))
	assert.True(t, CanCreateLease(domain.RolePropertyManager, "mgr-1", "mgr-1"))
	assert.False(t, CanCreateLease(domain.RolePropertyManager, "mgr-2", "mgr-1"))
	assert.False(t, CanCreateLease(domain.RoleTenant, "tenant-1", "tenant-1"))
}

func TestCanAcknowledgeLease(t *testing.T) {
	assert.True(t, CanAcknowledgeLease(domain.RoleAdmin, "admin-1", "mgr-1"))
	assert.True(t, CanAcknowledgeLease(domain.RolePropertyManager, "mgr-1", "mgr-1"))
	assert.False(t, CanAcknowledgeLease(domain.RolePropertyManager, "mgr-2", "mgr-1"))
	assert.False(t, CanAcknowledgeLease(domain.RoleTenant, "mgr-1", "mgr-1"))
}

func TestCanUpdateMaintenance(t *testing.T) {
	assigned := "ct-1"

	assert.True(t, CanUpdateMaintenance(domain.RoleAdmin, "admin-1", &assigned))
	assert.True(t, CanUpdateMaintenance(domain.RoleAdmin, "admin-1", nil))
	assert.True(t, CanUpdateMaintenance(domain.RoleCaretaker, "ct-1", &assigned))
	assert.False(t, CanUpdateMaintenance(domain.RoleCaretaker, "ct-2", &assigned))
	assert.False(t, CanUpdateMaintenance(domain.RoleCaretaker, "ct-1", nil))
	assert.False(t, CanUpdateMaintenance(domain.RolePropertyManager, "mgr-1", &assigned))
	assert.False(t, CanUpdateMaintenance(domain.RoleTenant, "tenant-1", &assigned))
}

func TestCanReadMaintenance(t *testing.T) {
	assigned := "ct-1"

	assert.True(t, CanReadMaintenance(domain.RoleTenant, "tenant-1", "tenant-1", "mgr-1", nil))
	assert.False(t, CanReadMaintenance(domain.RoleTenant, "tenant-2", "tenant-1", "mgr-1", nil))
	assert.True(t, CanReadMaintenance(domain.RolePropertyManager, "mgr-1", "tenant-1", "mgr-1", nil))
	assert.True(t, CanReadMaintenance(domain.RoleCaretaker, "ct-1", "tenant-1", "mgr-1", &assigned))
	assert.False(t, CanReadMaintenance(domain.RoleCaretaker, "ct-1", "tenant-1", "mgr-1", nil))
}

func TestCanCreateProperty(t *testing.T) {
	assert.True(t, CanCreateProperty(domain.RolePropertyManager))
	assert.True(t, CanCreateProperty(domain.RoleAdmin))
	assert.False(t, CanCreateProperty(domain.RoleTenant))
	assert.False(t, CanCreateProperty(domain.RoleCaretaker))
}

func TestCanPostAnnouncement(t *testing.T) {
	assert.True(t, CanPostAnnouncement(domain.RoleAdmin))
	assert.False(t, CanPostAnnouncement(domain.RolePropertyManager))
	assert.False(t, CanPostAnnouncement(domain.RoleTenant))
}
