package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		Email:           "admin@wukong.co.id",
		Password:        "sup3rsecret",
		ConfirmPassword: "sup3rsecret",
		Name:            "Admin",
	}

	t.Run("valid request passes", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("email must be well formed", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("password needs a letter and a digit", func(t *testing.T) {
		for _, password := range []string{"onlyletters", "12345678", "sh0rt"} {
			req := valid
			req.Password = password
			req.ConfirmPassword = password
			assert.ErrorIs(t, req.Validate(), errInvalidPassword, "password %q should be rejected", password)
		}
	})

	t.Run("confirm password must match", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "sup3rsecret2"
		assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
	})
}

func TestLoginRequestValidate(t *testing.T) {
	req := LoginRequest{Email: "admin@wukong.co.id", Password: "sup3rsecret"}
	assert.NoError(t, req.Validate())

	req.Password = ""
	assert.Error(t, req.Validate())
}
