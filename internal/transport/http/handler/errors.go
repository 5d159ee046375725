package handler

// User-facing messages, kept byte-for-byte compatible with the API
// clients already consume.
const (
	errInternalServer = "Internal server error"

	errCredsRequired    = "Email and password are required"
	errInvalidCreds     = "Invalid email or password"
	errInvalidEmail     = "Invalid email"
	errEmailTooLong     = "Email must not be longer than 255 characters"
	errPasswordTooShort = "Password must be at least 8 character"
	errEmailTaken       = "Email already registered"
	errInvalidSession   = "Invalid session"

	errEmailRequired        = "Email is required"
	errTokenAndPwRequired   = "Token and password are required"
	errInvalidResetToken    = "Invalid token"
	errEmailSendFailed      = "Error while sending the email"
	errNewPasswordTooShort  = "New password must be at least 8 characters"
	errPasswordsRequired    = "Current and new password are required"
	errIncorrectOldPassword = "Incorrect old password"
	errEmailInUse           = "Email already in use"
	errNameTooLong          = "Name must be less than 255 characters"
	errUserNotFound         = "User not found"

	errNoteFieldsRequired = "Note must have a title and a body"
	errNoteNotFound       = "Note not found"
)
