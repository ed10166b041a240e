package userservice

// User модель пользователя из UserService
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// displayNamesRequest запрос bulk-резолва отображаемых имен
type displayNamesRequest struct {
	UserIDs []string `json:"user_ids"`
}

// displayNamesResponse ответ bulk-резолва: user id -> display name
type displayNamesResponse struct {
	DisplayNames map[string]string `json:"display_names"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
