package apistrings

const (
	/// Basic User Related Strings
	UserNotFound = "user or account does not exist"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// KYC Related Strings
	InvalidCustomerInput    = "invalid customer information, all fields are required"
	InvalidBankAccountInput = "invalid bank account input, please check submitted information"
	InvalidBVNInput         = "invalid bvn input, please check submitted information"
	VerificationFailed      = "verification not successful, please try again with correct details"
	ProviderUnavailable     = "verification service is unavailable, please try again later"
	ProgressSaveWarning     = "verification succeeded but progress could not be saved, your session may not resume correctly"
	UserNoKYC               = "user does not have KYC information"
	KYCUnderReview          = "your verification is under review, please contact support"
	KYCAlreadyVerified      = "your account is already verified"
)
