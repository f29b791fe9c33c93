package payload

import (
	"net/url"

	"github.com/jellydator/validation"
)

type UserRequest struct {
	Username string `json:"username"`
}

func (u UserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Required, validation.Length(1, 255)),
	)
}

func (u *UserRequest) Bind(values url.Values) error {
	u.Username = values.Get("username")
	return nil
}
