package pool_iface

import "time"

type UserItem struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type RegisterResponse struct {
	User *UserItem `json:"user"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiredAt time.Time `json:"expired_at"`
	User      *UserItem `json:"user"`
}

type MeRequest struct{}

type MeResponse struct {
	User               *UserItem `json:"user"`
	ManagedBusinessIDs []uint    `json:"managed_business_ids"`
}

type UserListRequest struct {
	Page PageFilter `json:"page"`
}

type UserListResponse struct {
	Data     []*UserItem `json:"data"`
	PageInfo *PageInfo   `json:"page_info"`
}

type VisibleUsersRequest struct{}

type VisibleUsersResponse struct {
	Data []*UserItem `json:"data"`
}
