package gateway

import (
	"net/http"

	"aiktp_sync/internal/domain"
)

const (
	MsgMissingToken    = "Missing or invalid authentication token."
	MsgInvalidToken    = "Invalid authentication token."
	MsgNoAdministrator = "No administrator user found. Please ensure at least one administrator account exists."
	MsgCannotPublish   = "User does not have permission to create and publish posts."
	MsgCannotUpload    = "User does not have permission to upload files."
	MsgNotAllowed      = "Sorry, you are not allowed to do that."
	MsgNotLoggedIn     = "You must be logged in to access this endpoint."
	MsgAdminOnly       = "You do not have sufficient permissions to access this endpoint. Only administrators can retrieve the sync token."
	MsgRecordNotFound  = "Post not found"
)

// AuthError is an authorization failure with the message and status shown to
// the caller. It unwraps to domain.ErrUnauthorized or domain.ErrNoAdministrator.
type AuthError struct {
	Status  int
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func forbidden(msg string) *AuthError {
	return &AuthError{Status: http.StatusForbidden, Message: msg, Err: domain.ErrUnauthorized}
}

func capabilityMessage(need []domain.Capability) string {
	for _, c := range need {
		switch c {
		case domain.CapUploadFiles:
			return MsgCannotUpload
		case domain.CapEditPosts, domain.CapPublishPosts:
			return MsgCannotPublish
		}
	}
	return MsgNotAllowed
}
