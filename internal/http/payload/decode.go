package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

const (
	maxBodyBytes     = 1 << 20
	maxMultipartSize = 1 << 20
)

var ErrUnsupportedForm = errors.New("payload cannot be bound from form values")

// Binder is implemented by payloads that can be read from form values.
type Binder interface {
	Bind(values url.Values) error
}

// Decoder reads JSON or form encoded request bodies and validates the result.
type Decoder struct{}

func (d Decoder) DecodePayload(r *http.Request, object any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		err = d.decodeForm(r, mediaType, object)
	default:
		err = d.decodeJSON(r, object)
	}
	if err != nil {
		return err
	}

	return ValidatePayload(object)
}

func (d Decoder) decodeJSON(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

func (d Decoder) decodeForm(r *http.Request, mediaType string, object any) error {
	binder, ok := object.(Binder)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedForm, object)
	}

	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxMultipartSize)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("parsing form payload: %w", err)
	}

	if err := binder.Bind(r.PostForm); err != nil {
		return fmt.Errorf("binding form payload: %w", err)
	}

	return nil
}

// ValidatePayload runs the object's validation rules. Field errors caused by
// ErrInvalidDate, ErrNotNumeric or ErrInvalidLimit stay matchable with errors.Is.
func ValidatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	err := t.Validate()
	if err == nil {
		return nil
	}
	if cause := fieldCause(err); cause != nil {
		return fmt.Errorf("validating payload: %w: %w", cause, err)
	}
	return fmt.Errorf("validating payload: %w", err)
}

func fieldCause(err error) error {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	for _, sentinel := range []error{ErrNotNumeric, ErrInvalidDate, ErrInvalidLimit} {
		for _, fieldErr := range fieldErrs {
			if errors.Is(fieldErr, sentinel) {
				return sentinel
			}
		}
	}
	return nil
}
