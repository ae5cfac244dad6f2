package auth

import "errors"

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Username    string `json:"username" binding:"required,min=3,max=32"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
	Mail        string `json:"mail"`
}

type loginResponse struct {
	Token string `json:"token"`
}

var (
	errAuthUserNotFound       = errors.New("user not found")
	errAuthWrongPassword      = errors.New("wrong password")
	errOwnerAlreadyRegistered = errors.New("owner already registered")
)
