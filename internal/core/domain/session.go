package domain

// Session is the persisted part of the authentication state.
type Session struct {
	User            *Profile `json:"user"`
	Token           string   `json:"token"`
	IsAuthenticated bool     `json:"isAuthenticated"`
}

type SessionStatus int

const (
	StatusAnonymous SessionStatus = iota
	StatusAuthenticating
	StatusAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// TotalPages returns how many pages of pageSize are needed to show total items.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}
