package payload

import (
	"exercisetracker/internal/core"
	"fmt"
	"net/url"
	"strings"

	"github.com/jellydator/validation"
)

type ExerciseRequest struct {
	Description string  `json:"description"`
	Duration    *Number `json:"duration"`
	Date        string  `json:"date"`
}

func (e ExerciseRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Description, validation.Length(0, 1000)),
		validation.Field(&e.Duration, validation.NotNil, validation.Min(0.0)),
		validation.Field(&e.Date, validation.By(isDate)),
	)
}

func (e *ExerciseRequest) Bind(values url.Values) error {
	e.Description = values.Get("description")
	e.Date = values.Get("date")

	if raw := strings.TrimSpace(values.Get("duration")); raw != "" {
		n, err := ParseNumber(raw)
		if err != nil {
			return fmt.Errorf("duration: %w", err)
		}
		e.Duration = &n
	}
	return nil
}

func (e ExerciseRequest) ToMessage() (core.ExerciseMessage, error) {
	date, err := optionalDate(e.Date)
	if err != nil {
		return core.ExerciseMessage{}, fmt.Errorf("date: %w", err)
	}

	msg := core.ExerciseMessage{
		Description: e.Description,
		Date:        date,
	}
	if e.Duration != nil {
		msg.Duration = float64(*e.Duration)
	}
	return msg, nil
}
