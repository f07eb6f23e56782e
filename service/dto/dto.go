package dto

type Inquiry struct {
	UserType    string `json:"userType"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Postcode    string `json:"postcode"`
	Description string `json:"description"`
	ContactTime string `json:"contactTime"`
}

type SubmitResult struct {
	Message string `json:"message"`
	TaskId  string `json:"taskId"`
}

type Verification struct {
	TaskId string `json:"taskId"`
	Status string `json:"status"`
	Email  string `json:"email"`
}

type VerifyResult struct {
	Success bool `json:"success"`
}

type Subscription struct {
	Email string `json:"email"`
}

type SubscribeResult struct {
	Message string `json:"message"`
}
