// Package authz answers "may this principal perform this action on this
// entity" as pure functions over the principal's role and the ownership
// links already loaded by the caller. It performs no I/O; fetching the
// profile row (and coercing a missing role to tenant) is the caller's job.
package authz

import "rentora-backend/internal/domain"

// CanCreateProperty reports whether the role may create property listings.
func CanCreateProperty(role domain.Role) bool {
	switch role {
	case domain.RoleAdmin, domain.RolePropertyManager:
		return true
	case domain.RoleTenant, domain.RoleCaretaker:
		return false
	}
	return false
}

// CanDecideApplication reports whether the actor may approve or reject an
// application for a property owned by propertyOwnerID.
func CanDecideApplication(role domain.Role, actorID, propertyOwnerID string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RolePropertyManager:
		return actorID == propertyOwnerID
	case domain.RoleTenant, domain.RoleCaretaker:
		return false
	}
	return false
}

// CanReadApplication reports whether the actor may see an application row.
func CanReadApplication(role domain.Role, actorID, applicantID, propertyOwnerID string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RolePropertyManager:
		return actorID == propertyOwnerID
	case domain.RoleTenant:
		return actorID == applicantID
	case domain.RoleCaretaker:
		return false
	}
	return false
}

// CanCreateLease reports whether the actor may issue a lease for a property
// owned by propertyOwnerID.
func CanCreateLease(role domain.Role, actorID, propertyOwnerID string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RolePropertyManager:
		return actorID == propertyOwnerID
	case domain.RoleTenant, domain.RoleCaretaker:
		return false
	}
	return false
}

// CanAcknowledgeLease reports whether the actor may acknowledge a signed
// lease issued by managerID.
func CanAcknowledgeLease(role domain.Role, actorID, managerID string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RolePropertyManager:
		return actorID == managerID
	case domain.RoleTenant, domain.RoleCaretaker:
		return false
	}
	return false
}

// CanReadLease reports whether the actor may see a lease row.
func CanReadLease(role domain.Role, actorID, tenantID, managerID string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RolePropertyManager:
		return actorID == managerID
	case domain.RoleTenant:
		return actorID == tenantID
	case domain.RoleCaretaker:
		return false
	}
	return false
}

// CanAssignMaintenance reports whether the actor may assign a caretaker to a
// request filed against a property owned by propertyOwnerID.
func CanAssignMaintenance(role domain.Role, actorID, propertyOwnerID string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RolePropertyManager:
		return actorID == propertyOwnerID
	case domain.RoleTenant, domain.RoleCaretaker:
		return false
	}
	return false
}

// CanUpdateMaintenance reports whether the actor may update status or append
// progress to a request. Only the assigned caretaker (or an admin) may.
func CanUpdateMaintenance(role domain.Role, actorID string, caretakerID *string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCaretaker:
		return caretakerID != nil && *caretakerID == actorID
	case domain.RoleTenant, domain.RolePropertyManager:
		return false
	}
	return false
}

// CanReadMaintenance reports whether the actor may see a maintenance request.
func CanReadMaintenance(role domain.Role, actorID, tenantID, propertyOwnerID string, caretakerID *string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RolePropertyManager:
		return actorID == propertyOwnerID
	case domain.RoleTenant:
		return actorID == tenantID
	case domain.RoleCaretaker:
		return caretakerID != nil && *caretakerID == actorID
	}
	return false
}

// CanPostAnnouncement reports whether the role may publish announcements.
func CanPostAnnouncement(role domain.Role) bool {
	return role == domain.RoleAdmin
}
