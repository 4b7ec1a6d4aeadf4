package apistrings

const (
	UserDetailsAlreadyCreated = "email or phone number already exists"
	IncorrectEmailPass        = "incorrect email or password"
	InvalidEmail              = "please provide a valid email address"
	InvalidPhone              = "please provide a valid phone number e.g +2348012345678"
	InvalidPhoneEmailInput    = "please provide email and password"
	AdminOnly                 = "you are not allowed to perform this action"
)
