package requests

type CreateQuery struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone_number"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Message     string `json:"message" validate:"required,max=2000"`
}
