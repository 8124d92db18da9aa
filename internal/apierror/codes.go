package apierror

// Error type URIs following the urn:workwell:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:workwell:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:workwell:error:not_found"

	// TypeDuplicateCheckin indicates a check-in already exists for the date (409)
	TypeDuplicateCheckin = "urn:workwell:error:duplicate_checkin"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:workwell:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:workwell:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:workwell:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:workwell:error:internal"

	// TypeUnavailable indicates a dependency is not ready (503)
	TypeUnavailable = "urn:workwell:error:unavailable"

	// TypeInvalidUUID indicates an invalid UUID format in request (400)
	TypeInvalidUUID = "urn:workwell:error:invalid_uuid"

	// TypeFutureDate indicates a check-in date too far in the future (400)
	TypeFutureDate = "urn:workwell:error:future_date"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:workwell:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation       = "Validation Error"
	TitleNotFound         = "Resource Not Found"
	TitleDuplicateCheckin = "Duplicate Check-in"
	TitleRateLimit        = "Rate Limit Exceeded"
	TitleUnauthorized     = "Authentication Required"
	TitleForbidden        = "Permission Denied"
	TitleInternal         = "Internal Server Error"
	TitleUnavailable      = "Service Unavailable"
	TitleInvalidUUID      = "Invalid UUID Format"
	TitleFutureDate       = "Future Date Not Allowed"
	TitleBadRequest       = "Bad Request"
)
