package models

type UserRole string

const (
	UserRoleApplicant UserRole = "applicant"
	UserRoleCompany   UserRole = "company"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) IsCompany() bool {
	return r == UserRoleCompany
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
