package dto

type CreateForumRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
}

type CreateThreadRequest struct {
	Title   string `json:"title" binding:"required,min=5,max=100"`
	Content string `json:"content" binding:"required,min=10"`
}

type CreatePostRequest struct {
	Content string `json:"content" binding:"required,min=5,max=10000"`
}

type ModeratePostRequest struct {
	Action string `json:"action" binding:"required,is-moderation-action"`
	Reason string `json:"reason,omitempty" binding:"omitempty,max=500"`
}
