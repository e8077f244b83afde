package command

import "workflowpro-api/internal/application/common"

type RegisterUserCommand struct {
	Email          string `json:"email"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Password       string `json:"password"`
	IdempotencyKey string `json:"-"`
}

type RegisterUserCommandResult struct {
	Result common.UserResult `json:"result"`
}

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
