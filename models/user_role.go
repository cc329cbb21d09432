package models

type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN_ROLE"
	UserRoleManager UserRole = "MANAGER_ROLE"
	UserRoleCoder   UserRole = "CODER_ROLE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:   "Администратор",
	UserRoleManager: "Менеджер",
	UserRoleCoder:   "Кодер",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// CanManageVacancies - роли с доступом к управлению вакансиями и просмотру всех откликов
func (r UserRole) CanManageVacancies() bool {
	return r == UserRoleAdmin || r == UserRoleManager
}
