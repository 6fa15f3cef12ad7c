package rest

import (
	"io"
	"net/url"

	"github.com/pkg/errors"

	"github.com/progedu/secretboard/internal/domain"
)

// readFormField reads the request body to completion and returns the
// named field from the urlencoded payload. The read blocks this
// request's goroutine until the client finishes sending; no deadline
// is applied, so a stalled client holds its goroutine open.
//
// A body that cannot be decoded, or that lacks the expected field,
// yields MalformedBodyError rather than an empty value.
func readFormField(body io.Reader, field string) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read request body")
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return "", domain.MalformedBodyError{Field: field}
	}

	if _, ok := values[field]; !ok {
		return "", domain.MalformedBodyError{Field: field}
	}

	return values.Get(field), nil
}
