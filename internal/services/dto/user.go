package dto

import "acsp_backend/internal/models"

// CompleteProfileRequest is the JSON profile-completion path; Photo and
// IDCard are URLs already obtained from the upload endpoint.
type CompleteProfileRequest struct {
	Photo          string `json:"photo" binding:"required,url"`
	IDCard         string `json:"idCard" binding:"required,url"`
	Phone          string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Institution    string `json:"institution,omitempty" binding:"omitempty,max=200"`
	Specialization string `json:"specialization,omitempty" binding:"omitempty,max=200"`
	Bio            string `json:"bio,omitempty" binding:"omitempty,max=1000"`
}

// UpdateProfileRequest changes the optional profile fields only; the
// verification documents stay as reviewed.
type UpdateProfileRequest struct {
	Name           string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email          string `json:"email,omitempty" binding:"omitempty,email"`
	Phone          string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Institution    string `json:"institution,omitempty" binding:"omitempty,max=200"`
	Specialization string `json:"specialization,omitempty" binding:"omitempty,max=200"`
	Bio            string `json:"bio,omitempty" binding:"omitempty,max=1000"`
}

type RejectUserRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

type BanUserRequest struct {
	Reason string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// ChangeRoleRequest reassigns an account's role. Moderator and guest are
// not assignable here; admins grant or revoke admin rights only.
type ChangeRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required,oneof=admin member"`
}

type ListUsersQuery struct {
	Status models.UserStatus `form:"status"`
	Role   models.UserRole   `form:"role" binding:"omitempty,is-user-role"`
	Page   int               `form:"page" binding:"omitempty,gte=1"`
	Limit  int               `form:"limit" binding:"omitempty,gte=1,max=100"`
}

// UserListResponse is the paginated admin listing.
type UserListResponse struct {
	Users []models.User `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}
