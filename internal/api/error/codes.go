package error

import "net/http"

type ErrorCode string

const (
	UnknownError          ErrorCode = "unknown_error"
	InternalServerError   ErrorCode = "internal_server_error"
	BadRequest            ErrorCode = "bad_request"
	InvalidFilters        ErrorCode = "invalid_filters"
	InvalidRecipeID       ErrorCode = "invalid_recipe_id"
	InvalidProfileToken   ErrorCode = "invalid_profile_token"
	ExpiredProfileToken   ErrorCode = "expired_profile_token"
	RecipeNotFound        ErrorCode = "recipe_not_found"
	UpstreamUnavailable   ErrorCode = "upstream_unavailable"
	PreferencesNotWritten ErrorCode = "preferences_not_written"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:          0, // No error code - unknown
	InternalServerError:   http.StatusInternalServerError,
	BadRequest:            http.StatusBadRequest,
	InvalidFilters:        http.StatusUnprocessableEntity,
	InvalidRecipeID:       http.StatusBadRequest,
	InvalidProfileToken:   http.StatusUnauthorized,
	ExpiredProfileToken:   http.StatusUnauthorized,
	RecipeNotFound:        http.StatusNotFound,
	UpstreamUnavailable:   http.StatusBadGateway,
	PreferencesNotWritten: http.StatusServiceUnavailable,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
