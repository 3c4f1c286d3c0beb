package domain

// Role is the backend's numeric user type.
type Role int

const (
	RoleUnknown Role = 0
	RoleDoctor  Role = 1
	RolePatient Role = 2
)

// DashboardPath returns the route a freshly authenticated user of this role
// lands on. Unknown roles fall back to the login page.
func (r Role) DashboardPath() string {
	switch r {
	case RoleDoctor:
		return "/doctor-dashboard"
	case RolePatient:
		return "/patient-dashboard"
	default:
		return "/login"
	}
}

func (r Role) String() string {
	switch r {
	case RoleDoctor:
		return "doctor"
	case RolePatient:
		return "patient"
	default:
		return "unknown"
	}
}

// TokenPair is the session credential issued by the backend on login.
// The access token rides along as a bearer credential on every call; the
// refresh token buys a new access token when that one expires.
type TokenPair struct {
	Access  string
	Refresh string
}

// Registration carries the profile fields submitted when creating an account.
type Registration struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	UserType  Role
	Address   string
}
