package models

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
}

type UpdateReminderRequest struct {
	Time    string `json:"time" validate:"required,len=5"`
	Enabled bool   `json:"enabled"`
}
