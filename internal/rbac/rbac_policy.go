package rbac

const (
	ResourceCompany       = "company"
	ResourceEmployee      = "employee"
	ResourceProfile       = "profile"
	ResourceDirectory     = "directory"
	ResourceClock         = "clock"
	ResourceTimecard      = "timecard"
	ResourcePay           = "pay"
	ResourceChangeRequest = "change_request"
	ResourceTimeOff       = "time_off"
	ResourceReport        = "report"
	ResourceAnnouncement  = "announcement"
	ResourceNotification  = "notification"
)

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionPunch  = "punch"
	ActionDecide = "decide"
	ActionSend   = "send"
)

// DefaultPolicies is the role matrix shipped with the service. Roles are
// the ones carried in access tokens (auth.RoleAdmin, auth.RoleEmployee).
func DefaultPolicies() [][]string {
	return [][]string{
		{"admin", ResourceCompany, ActionRead},
		{"admin", ResourceCompany, ActionUpdate},
		{"admin", ResourceEmployee, ActionCreate},
		{"admin", ResourceEmployee, ActionRead},
		{"admin", ResourceClock, ActionPunch},
		{"admin", ResourceClock, ActionRead},
		{"admin", ResourcePay, ActionRead},
		{"admin", ResourceChangeRequest, ActionRead},
		{"admin", ResourceChangeRequest, ActionDecide},
		{"admin", ResourceTimeOff, ActionRead},
		{"admin", ResourceTimeOff, ActionDecide},
		{"admin", ResourceReport, ActionRead},
		{"admin", ResourceAnnouncement, ActionCreate},
		{"admin", ResourceAnnouncement, ActionRead},
		{"admin", ResourceNotification, ActionSend},

		{"employee", ResourceProfile, ActionRead},
		{"employee", ResourceProfile, ActionUpdate},
		{"employee", ResourceDirectory, ActionRead},
		{"employee", ResourceTimecard, ActionRead},
		{"employee", ResourcePay, ActionRead},
		{"employee", ResourceChangeRequest, ActionCreate},
		{"employee", ResourceTimeOff, ActionCreate},
		{"employee", ResourceTimeOff, ActionRead},
		{"employee", ResourceAnnouncement, ActionRead},
	}
}
