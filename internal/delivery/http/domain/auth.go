package domain

var (
	AUTH_SIGNIN_SUCCESS  = "Signed in successfully"
	AUTH_SIGNIN_FAILED   = "Failed to sign in"
	AUTH_SIGNUP_SUCCESS  = "Signed up successfully"
	AUTH_SIGNUP_FAILED   = "Failed to sign up"
	AUTH_LOGOUT_SUCCESS  = "Logged out successfully"
	AUTH_LOGOUT_FAILED   = "Failed to log out"
	AUTH_UNAUTHENTICATED = "Authentication required"

	AUTH_SESSION_LOOKUP_FAILED = "Failed to verify session"
)
