package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

// Messages returned to clients when a task payload is rejected.
const (
	MsgBodyRequired          = "Request body is required"
	MsgTitleRequired         = "Title is required"
	MsgDescriptionRequired   = "Description is required"
	MsgTitleNotString        = "Title must be a string"
	MsgDescriptionNotString  = "Description must be a string"
	MsgIsCompletedNotBoolean = "is_completed must be a boolean"
)

const (
	fieldBody        = "body"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldIsCompleted = "is_completed"
)

// ValidateTaskPayload checks the raw JSON body of a create or update request
// and converts it into a TaskInput. Checks run in a fixed order and the first
// failure is returned as a *ValidationError.
//
// The body must be a truthy JSON value; a truthy value that is not an object
// has no keys and fails the title check. title must be present and truthy,
// description must be present, both must be strings, and is_completed, when
// present, must be a boolean.
func ValidateTaskPayload(body []byte) (*TaskInput, error) {
	payload, err := decodeBody(body)
	if err != nil || !truthy(payload) {
		return nil, NewValidationError(fieldBody, MsgBodyRequired, nil)
	}

	fields, _ := payload.(map[string]any)

	rawTitle, ok := fields[fieldTitle]
	if !ok || !truthy(rawTitle) {
		return nil, NewValidationError(fieldTitle, MsgTitleRequired, nil)
	}

	rawDescription, ok := fields[fieldDescription]
	if !ok {
		return nil, NewValidationError(fieldDescription, MsgDescriptionRequired, nil)
	}

	title, ok := rawTitle.(string)
	if !ok {
		return nil, NewValidationError(fieldTitle, MsgTitleNotString, nil)
	}

	description, ok := rawDescription.(string)
	if !ok {
		return nil, NewValidationError(fieldDescription, MsgDescriptionNotString, nil)
	}

	input := &TaskInput{
		Title:       title,
		Description: description,
	}

	if rawCompleted, present := fields[fieldIsCompleted]; present {
		completed, ok := rawCompleted.(bool)
		if !ok {
			return nil, NewValidationError(fieldIsCompleted, MsgIsCompletedNotBoolean, nil)
		}
		input.IsCompleted = &completed
	}

	return input, nil
}

// CheckTaskPayload reports whether body is an acceptable task payload and,
// if not, the message describing the first problem found.
func CheckTaskPayload(body []byte) (bool, string) {
	_, err := ValidateTaskPayload(body)
	if err == nil {
		return true, ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return false, verr.Message
	}
	return false, err.Error()
}

// decodeBody decodes a complete JSON document into its generic Go form.
// Numbers stay json.Number so out-of-range values still decode.
func decodeBody(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}

var errTrailingData = errors.New("unexpected data after JSON value")

// truthy reports whether a decoded JSON value counts as set: null, false,
// zero, and empty strings, arrays, and objects do not.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		// Overflow parses as ±Inf and underflow as 0, matching float semantics
		f, _ := strconv.ParseFloat(x.String(), 64)
		return f != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}
