package models

// Auth requests are validated through the helper's validator so field
// errors come back translated per field, not as one binding error string.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SubmitStoryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type RejectStoryRequest struct {
	Reason string `json:"reason"`
}

type ModerateStoryRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason"`
}

type ConvertStoryRequest struct {
	CategoryID *uint  `json:"category_id"`
	Status     string `json:"status"`
}

type CreateArticleRequest struct {
	Title      string   `json:"title" binding:"required,min=1,max=255"`
	Content    string   `json:"content" binding:"required"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"cover_image"`
	CategoryID *uint    `json:"category_id"`
	Tags       []string `json:"tags"`
	Publish    bool     `json:"publish"`
}

// UpdateArticleRequest uses pointers so absent fields are left untouched.
type UpdateArticleRequest struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Excerpt    *string  `json:"excerpt"`
	CoverImage *string  `json:"cover_image"`
	CategoryID *uint    `json:"category_id"`
	Status     *string  `json:"status"`
	Tags       []string `json:"tags"`
}

type ArticleListParams struct {
	Status     string `form:"status"`
	CategoryID uint   `form:"category_id"`
	TagID      uint   `form:"tag_id"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SendNewsletterRequest struct {
	Subject  string         `json:"subject" binding:"required"`
	Template string         `json:"template" binding:"required"`
	Data     map[string]any `json:"data"`
}

type UpdatePreferencesRequest struct {
	CategoryIDs []uint `json:"category_ids"`
}
