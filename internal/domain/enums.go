package domain

// UserRole grants the staff bypass on visibility checks and admin endpoints.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// RequestOutcome records how a contact request left the PENDING state.
// Storage still keys dedup on is_active; the outcome is audit detail.
type RequestOutcome string

const (
	RequestOutcomePending   RequestOutcome = "PENDING"
	RequestOutcomeAccepted  RequestOutcome = "ACCEPTED"
	RequestOutcomeDeclined  RequestOutcome = "DECLINED"
	RequestOutcomeCancelled RequestOutcome = "CANCELLED"
)

func (o RequestOutcome) String() string { return string(o) }

func (o RequestOutcome) IsValid() bool {
	switch o {
	case RequestOutcomePending, RequestOutcomeAccepted, RequestOutcomeDeclined, RequestOutcomeCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the outcome can no longer change.
func (o RequestOutcome) IsTerminal() bool {
	return o.IsValid() && o != RequestOutcomePending
}

// InvitationStatus is the invitee's answer to an invitation.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusDeclined InvitationStatus = "DECLINED"
)

func (s InvitationStatus) String() string { return string(s) }

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusDeclined:
		return true
	}
	return false
}

// GrantsVisibility reports whether an invitation in this status lets the
// invitee see the event.
func (s InvitationStatus) GrantsVisibility() bool {
	return s == InvitationStatusPending || s == InvitationStatusAccepted
}
