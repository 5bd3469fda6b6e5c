package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_TAKEN"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Enlistment ────────────────────────────────────────────────────
	ErrProgramIneligible ErrCode = "PROGRAM_INELIGIBLE"
	ErrTimeConflict      ErrCode = "TIME_CONFLICT"
	ErrDuplicateLecture  ErrCode = "DUPLICATE_LECTURE"
	ErrDuplicateLab      ErrCode = "DUPLICATE_LAB"
	ErrSectionMismatch   ErrCode = "SECTION_MISMATCH"
	ErrCourseNotFound    ErrCode = "COURSE_NOT_FOUND"

	// ─── Schedule management ───────────────────────────────────────────
	ErrEmptyName        ErrCode = "EMPTY_NAME"
	ErrNameExists       ErrCode = "NAME_EXISTS"
	ErrNoOtherSchedules ErrCode = "NO_OTHER_SCHEDULES"
	ErrCannotDeleteLast ErrCode = "CANNOT_DELETE_LAST"
	ErrScheduleNotFound ErrCode = "SCHEDULE_NOT_FOUND"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Incorrect email or password."
	case ErrEmailTaken:
		return "An account with this email already exists."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."

	// ─── Enlistment ────────────────────────────────────────────────────
	case ErrProgramIneligible:
		return "This course is not available for your program."
	case ErrTimeConflict:
		return "This course conflicts with your existing schedule!"
	case ErrDuplicateLecture:
		return "You are already enrolled in a lecture section for this course!"
	case ErrDuplicateLab:
		return "You are already enrolled in a lab section for this course!"
	case ErrSectionMismatch:
		return "Lab and lecture sections for a course must match."
	case ErrCourseNotFound:
		return "This course is not in your schedule."

	// ─── Schedule management ───────────────────────────────────────────
	case ErrEmptyName:
		return "Schedule name cannot be empty."
	case ErrNameExists:
		return "A schedule with this name already exists."
	case ErrNoOtherSchedules:
		return "You only have one schedule. Create a new one first."
	case ErrCannotDeleteLast:
		return "You must have at least one schedule."
	case ErrScheduleNotFound:
		return "No schedule with this name exists."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "The requested resource was not found."

	// ─── Media ─────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "This file type is not supported."
	case ErrFileTooLarge:
		return "The file exceeds the size limit."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
