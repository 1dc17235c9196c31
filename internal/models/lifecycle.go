package models

import "fmt"

// LifecycleEvent is something that happens to an account and may move it to
// a new status. Every status change in the system goes through Transition so
// the rules live in exactly one place.
type LifecycleEvent string

const (
	EventEmailVerified    LifecycleEvent = "email_verified"
	EventProfileCompleted LifecycleEvent = "profile_completed"
	EventAdminApproved    LifecycleEvent = "admin_approved"
	EventAdminRejected    LifecycleEvent = "admin_rejected"
	EventSuspended        LifecycleEvent = "suspended"
	EventReinstated       LifecycleEvent = "reinstated"
	EventDeactivated      LifecycleEvent = "deactivated"
	EventBanned           LifecycleEvent = "banned"
	EventUnbanned         LifecycleEvent = "unbanned"
)

// InvalidTransitionError is returned when an event is not allowed from the
// account's current status.
type InvalidTransitionError struct {
	From  UserStatus
	Event LifecycleEvent
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s on %q", e.Event, e.From)
}

type transitionKey struct {
	from  UserStatus
	event LifecycleEvent
}

// transitions is the authoritative (status, event) -> status table.
// Banned and unbanned are handled separately because they apply to
// ranges of statuses rather than a single one.
var transitions = map[transitionKey]UserStatus{
	{UserStatusPending, EventEmailVerified}:              UserStatusUnverifiedProfile,
	{UserStatusUnverifiedProfile, EventProfileCompleted}: UserStatusPendingVerification,
	{UserStatusPendingVerification, EventAdminApproved}:  UserStatusVerified,
	{UserStatusRejected, EventAdminApproved}:             UserStatusVerified,
	{UserStatusPendingVerification, EventAdminRejected}:  UserStatusRejected,
	{UserStatusVerified, EventSuspended}:                 UserStatusSuspended,
	{UserStatusSuspended, EventReinstated}:               UserStatusVerified,
}

// Transition applies event to the user's current status and returns the
// resulting status without mutating the user. The unban restore rule prefers
// the status recorded at ban time and otherwise falls back on profile
// completeness.
func (u *User) Transition(event LifecycleEvent) (UserStatus, error) {
	from := u.Status

	switch event {
	case EventBanned:
		if from == UserStatusBanned {
			return "", &InvalidTransitionError{From: from, Event: event}
		}
		return UserStatusBanned, nil

	case EventUnbanned:
		if from != UserStatusBanned {
			return "", &InvalidTransitionError{From: from, Event: event}
		}
		if u.StatusBeforeBan != "" && u.StatusBeforeBan != UserStatusBanned {
			return u.StatusBeforeBan, nil
		}
		return u.restoredStatus(), nil

	case EventDeactivated:
		if from == UserStatusBanned || from == UserStatusDeactivated {
			return "", &InvalidTransitionError{From: from, Event: event}
		}
		return UserStatusDeactivated, nil
	}

	to, ok := transitions[transitionKey{from: from, event: event}]
	if !ok {
		return "", &InvalidTransitionError{From: from, Event: event}
	}
	return to, nil
}

// restoredStatus picks a post-unban status for accounts banned before the
// ban-time status was recorded.
func (u *User) restoredStatus() UserStatus {
	switch {
	case !u.IsVerified:
		return UserStatusPending
	case u.Profile.Complete():
		return UserStatusPendingVerification
	default:
		return UserStatusUnverifiedProfile
	}
}
