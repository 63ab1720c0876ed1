package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
	RoleMechanic UserRole = "mechanic"
)

type User struct {
	Base
	FullName     string   `db:"full_name"`
	PhoneNumber  string   `db:"phone_number"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
