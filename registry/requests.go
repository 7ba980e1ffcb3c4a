package registry

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/strkey"
)

// validate is shared; validator caches struct metadata per type.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("dochash", func(fl validator.FieldLevel) bool {
		_, err := interfaces.ParseDocumentHash(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("stellar_address", func(fl validator.FieldLevel) bool {
		return strkey.IsValidEd25519PublicKey(fl.Field().String())
	})
	return v
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// RegisterIdentityRequest registers a new identity. Owner defaults to the
// signing account.
type RegisterIdentityRequest struct {
	ID           string `json:"id" validate:"required"`
	Owner        string `json:"owner,omitempty" validate:"omitempty,stellar_address"`
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	DocumentHash string `json:"document_hash" validate:"required,dochash"`
}

type UpdateIdentityRequest struct {
	ID           string `json:"id" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	DocumentHash string `json:"document_hash" validate:"required,dochash"`
}

// IdentityIDRequest addresses an identity by id alone, as activate and
// deactivate do.
type IdentityIDRequest struct {
	ID string `json:"id" validate:"required"`
}

type VerifyIdentityRequest struct {
	ID    string `json:"id" validate:"required"`
	Level uint32 `json:"level" validate:"lte=3"`
}

type GrantAccessRequest struct {
	ID              string `json:"id" validate:"required"`
	Grantee         string `json:"grantee" validate:"required,stellar_address"`
	Permission      uint32 `json:"permission" validate:"min=1,max=3"`
	DurationSeconds uint64 `json:"duration_seconds" validate:"gt=0"`
}

type RevokeAccessRequest struct {
	ID      string `json:"id" validate:"required"`
	Grantee string `json:"grantee" validate:"required,stellar_address"`
}
