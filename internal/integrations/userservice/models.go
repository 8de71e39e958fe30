package userservice

// User модель пользователя из UserService
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"` // ADMIN, LAB_MANAGER, TECHNICIAN, STUDENT
	Lab      string `json:"lab"`  // IVE, CEZERI, MEDTECH; может быть пустым
}

// DisplayName возвращает имя для отображения (полное имя либо username)
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
