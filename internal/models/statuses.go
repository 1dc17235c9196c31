package models

type UserStatus string
type UserRole string
type EventType string
type EventStatus string
type PostStatus string

const (
	UserStatusPending             UserStatus = "pending"
	UserStatusUnverifiedProfile   UserStatus = "unverified_profile"
	UserStatusPendingVerification UserStatus = "pending_verification"
	UserStatusVerified            UserStatus = "verified"
	UserStatusRejected            UserStatus = "rejected"
	UserStatusSuspended           UserStatus = "suspended"
	UserStatusDeactivated         UserStatus = "deactivated"
	UserStatusBanned              UserStatus = "banned"

	UserRoleAdmin     UserRole = "admin"
	UserRoleMember    UserRole = "member"
	UserRoleModerator UserRole = "moderator"
	UserRoleGuest     UserRole = "guest"

	EventTypePhysical EventType = "Physical"
	EventTypeVirtual  EventType = "Virtual"
	EventTypeHybrid   EventType = "Hybrid"

	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusPast     EventStatus = "past"

	PostStatusPending  PostStatus = "pending"
	PostStatusApproved PostStatus = "approved"
	PostStatusRejected PostStatus = "rejected"
)

// verifiedMemberStatuses is the single allow-set used by the forum guard.
// Members whose documents await admin review keep forum access.
var verifiedMemberStatuses = map[UserStatus]bool{
	UserStatusVerified:            true,
	UserStatusPendingVerification: true,
}

// IsVerifiedMember reports whether the status grants forum access.
func (s UserStatus) IsVerifiedMember() bool {
	return verifiedMemberStatuses[s]
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMember, UserRoleModerator, UserRoleGuest:
		return true
	default:
		return false
	}
}
