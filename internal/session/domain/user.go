package domain

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

type User struct {
	ID    string
	Name  string
	Email string
	Phone string
	Type  Role
}

func (u User) IsAdmin() bool {
	return u.Type == RoleAdmin
}
