package error

import "net/http"

type ErrorCode string

const (
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	TooManyRequests         ErrorCode = "too_many_requests"
	WeakPassword            ErrorCode = "weak_password"
	EmailConflict           ErrorCode = "email_conflict"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	RecipeNotOwned          ErrorCode = "recipe_not_owned"
	IngredientNotFound      ErrorCode = "ingredient_not_found"
	TagNotFound             ErrorCode = "tag_not_found"
	AlreadyInList           ErrorCode = "already_in_list"
	NotInList               ErrorCode = "not_in_list"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	InvalidCredentials:      http.StatusUnauthorized,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	TooManyRequests:         http.StatusTooManyRequests,
	WeakPassword:            http.StatusUnprocessableEntity,
	EmailConflict:           http.StatusConflict,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	IngredientNotFound:      http.StatusNotFound,
	TagNotFound:             http.StatusBadRequest,
	AlreadyInList:           http.StatusBadRequest,
	NotInList:               http.StatusBadRequest,
}

// StatusCode returns the HTTP status for ec, or 500 for unknown codes.
func (ec ErrorCode) StatusCode() int {
	if status, ok := errorCodeToStatusCode[ec]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (ec ErrorCode) String() string {
	return string(ec)
}
