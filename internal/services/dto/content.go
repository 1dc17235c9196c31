package dto

// Request bodies for the admin-managed content resources. Create and
// update share the same shape.

type SlideRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Subtitle string `json:"subtitle,omitempty" binding:"omitempty,max=300"`
	CTAText  string `json:"ctaText,omitempty" binding:"omitempty,max=100"`
	CTALink  string `json:"ctaLink,omitempty" binding:"omitempty,max=500"`
	ImageURL string `json:"imageUrl" binding:"required,url"`
	Order    int    `json:"order" binding:"gte=0"`
}

type AnnouncementRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Date         string `json:"date" binding:"required"`
	Category     string `json:"category" binding:"required,max=100"`
	Description  string `json:"description" binding:"required"`
	Speaker      string `json:"speaker,omitempty" binding:"omitempty,max=200"`
	SpeakerImage string `json:"speakerImage,omitempty" binding:"omitempty,url"`
}

type EventRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time,omitempty"`
	Venue       string `json:"venue,omitempty" binding:"omitempty,max=300"`
	Type        string `json:"type" binding:"required,is-event-type"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	Status      string `json:"status,omitempty" binding:"omitempty,oneof=upcoming past"`
}

// BlogRequest carries no date: publication date is stamped server-side
// on creation and preserved on update.
type BlogRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Excerpt  string `json:"excerpt,omitempty" binding:"omitempty,max=500"`
	Author   string `json:"author" binding:"required,max=100"`
	Category string `json:"category,omitempty" binding:"omitempty,max=100"`
	Image    string `json:"image,omitempty" binding:"omitempty,url"`
	Content  string `json:"content" binding:"required"`
}

type GalleryImageRequest struct {
	URL         string `json:"url" binding:"required,url"`
	Category    string `json:"category" binding:"required,max=100"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
}

type ExecutiveRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Position string `json:"position" binding:"required,max=100"`
	Bio      string `json:"bio,omitempty" binding:"omitempty,max=1000"`
	ImageURL string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	Order    int    `json:"order" binding:"gte=0"`
	IsActive *bool  `json:"isActive,omitempty"`
}
