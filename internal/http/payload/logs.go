package payload

import (
	"errors"
	"exercisetracker/internal/core"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jellydator/validation"
)

var ErrInvalidLimit = errors.New("must be a non-negative integer")

// LogRequest holds the raw query parameters of a log lookup.
type LogRequest struct {
	From  string
	To    string
	Limit string
}

func (l *LogRequest) Bind(values url.Values) error {
	l.From = values.Get("from")
	l.To = values.Get("to")
	l.Limit = values.Get("limit")
	return nil
}

func (l LogRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.From, validation.By(isDate)),
		validation.Field(&l.To, validation.By(isDate)),
		validation.Field(&l.Limit, validation.By(isLimit)),
	)
}

func (l LogRequest) ToQuery() (core.LogQuery, error) {
	var (
		query core.LogQuery
		err   error
	)

	if query.From, err = optionalDate(l.From); err != nil {
		return core.LogQuery{}, fmt.Errorf("from: %w", err)
	}
	if query.To, err = optionalDate(l.To); err != nil {
		return core.LogQuery{}, fmt.Errorf("to: %w", err)
	}
	if query.Limit, err = parseLimit(l.Limit); err != nil {
		return core.LogQuery{}, fmt.Errorf("limit: %w", err)
	}

	return query, nil
}

func isLimit(value any) error {
	s, _ := value.(string)
	_, err := parseLimit(s)
	return err
}

func parseLimit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}
