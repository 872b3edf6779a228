package dtos

// Contact-form submissions, write-only

type LeadRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Mobile string `json:"mobile" binding:"required"`
	UTM    string `json:"utm"`
	Page   string `json:"page"`
}

type EnterpriseDemoRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company" binding:"required"`
	Page    string `json:"page"`
}

type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
