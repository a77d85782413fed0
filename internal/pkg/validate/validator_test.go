package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signIn struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Internal string `json:"-" validate:"omitempty"`
}

func TestValidate_TranslatesFieldErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signIn{Email: "not-an-email", Password: "123"})
	var fe *FieldsError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "email must be a valid email address", fe.Fields["email"])
	assert.Equal(t, "password must be at least 6 characters in length", fe.Fields["password"])
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, NewValidator().Validate(&signIn{Email: "ada@example.com", Password: "secret1"}))
}

func TestFieldsError_Message(t *testing.T) {
	fe := NewFieldsError(map[string]string{"password": "password is required", "email": "email is required"})
	assert.Equal(t, "validation failed: email is required; password is required", fe.Error())
	assert.True(t, fe.Has("email"))
	assert.False(t, fe.Has("username"))
	assert.Equal(t, "validation failed", NewFieldsError(nil).Error())
}
