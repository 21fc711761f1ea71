package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidStateError represents an operation attempted against an entity in a
// state that does not permit it. The message always includes the actual
// current state so callers can tell "already accepted" from "already expired".
type InvalidStateError struct {
	Entity string
	State  string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s already %s", e.Entity, e.State)
}

// Is enables errors.Is() comparison for InvalidStateError. Two instances match
// on entity alone so handlers can classify without knowing the state.
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ExpiredError is distinct from InvalidStateError: it tells the caller the
// token is stale and a fresh invitation must be requested.
type ExpiredError struct {
	Entity string
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("%s has expired", e.Entity)
}

// Is enables errors.Is() comparison for ExpiredError
func (e *ExpiredError) Is(target error) bool {
	t, ok := target.(*ExpiredError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "member"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Already Exists / Conflict Errors
var (
	ErrAlreadyMember    = &AlreadyExistsError{Entity: "member", Context: "in this organization"}
	ErrInvitationExists = &AlreadyExistsError{Entity: "pending invitation", Context: "for this email"}
)

// Business Logic Errors
var (
	ErrInvalidRole       = &ValidationError{Field: "role", Message: "must be one of: owner, admin, member"}
	ErrSoleOwner         = errors.New("you are the only owner of this organization")
	ErrInvitationExpired = &ExpiredError{Entity: "invitation"}
)

// Authorization Errors
var (
	ErrNotAMember              = &AuthorizationError{Message: "you are not a member of this organization"}
	ErrOwnerRoleInviteOnly     = &AuthorizationError{Message: "only an organization owner can invite as owner"}
	ErrOwnerRoleAssignOnly     = &AuthorizationError{Message: "only an organization owner can assign the owner role"}
	ErrOwnerRemoveOnly         = &AuthorizationError{Message: "only an organization owner can remove owners"}
	ErrOwnerDeleteOnly         = &AuthorizationError{Message: "only an organization owner can delete the organization"}
	ErrInvitationEmailMismatch = &AuthorizationError{Message: "this invitation was sent to a different email address"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsExpired checks if an error is an ExpiredError
func IsExpired(err error) bool {
	var expiredErr *ExpiredError
	return errors.As(err, &expiredErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, state string) error {
	return &InvalidStateError{Entity: entity, State: state}
}

// NewInsufficientRoleError creates an AuthorizationError naming the roles the
// operation accepts and the role the caller actually holds.
func NewInsufficientRoleError(required, actual string) error {
	return &AuthorizationError{Message: fmt.Sprintf("required role: %s, your role: %s", required, actual)}
}
