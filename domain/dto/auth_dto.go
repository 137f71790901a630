package dto

import "finflix/domain/model"

type ReqSignUp struct {
	FirstName string `json:"first_name" binding:"required,min=1"`
	LastName  string `json:"last_name"  binding:"required,min=1"`
	UserName  string `json:"username"   binding:"required,email"`
	Password  string `json:"password"   binding:"required,password"`
}

type ReqAdminSignUp struct {
	ReqSignUp
	AdminKey string `json:"admin_key" binding:"required"`
}

type ReqLogin struct {
	UserName string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResAuth struct {
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	User    *model.User `json:"user,omitempty"`
}
