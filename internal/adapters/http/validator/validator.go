// Package validator
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"inkwell/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator reports problems as field name to message. An empty map means
// the payload is valid.
type Validator interface {
	Validate(payload any) map[string]string
}

type structValidator struct {
	validate *validator.Validate
}

func New() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("maxbytes", maxBytes)
	v.RegisterStructValidation(createPostRules, domain.CreatePostRequest{})
	v.RegisterStructValidation(updatePostRules, domain.UpdatePostRequest{})

	return &structValidator{validate: v}
}

func (s *structValidator) Validate(payload any) map[string]string {
	err := s.validate.Struct(payload)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = "The payload is invalid."
		return errors
	}

	for _, fe := range validationErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("The %s field is required.", field)
		case "required_without":
			errors[field] = fmt.Sprintf("The %s field is required when %s is not present.", field, fe.Param())
		case "email":
			errors[field] = fmt.Sprintf("The %s must be a valid email address.", field)
		case "min":
			errors[field] = fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
		case "max":
			errors[field] = fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
		case "maxbytes":
			errors[field] = fmt.Sprintf("The %s may not be greater than %s bytes.", field, fe.Param())
		case "uuid":
			errors[field] = fmt.Sprintf("The %s must be a valid UUID.", field)
		default:
			errors[field] = fmt.Sprintf("The %s field is invalid.", field)
		}
	}

	return errors
}

// maxBytes limits the encoded length of a string, unlike max which counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func createPostRules(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(domain.CreatePostRequest)
	if !ok {
		return
	}

	if req.Title != "" && strings.TrimSpace(req.Title) == "" {
		sl.ReportError(req.Title, "title", "Title", "required", "")
	}

	if req.Content != "" && strings.TrimSpace(req.Content) == "" {
		sl.ReportError(req.Content, "content", "Content", "required", "")
	}
}

// updatePostRules: at least one of title/content, and a present one may not be blank.
func updatePostRules(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(domain.UpdatePostRequest)
	if !ok {
		return
	}

	if req.Title == nil && req.Content == nil {
		sl.ReportError(req.Title, "title", "Title", "required_without", "content")
		return
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		sl.ReportError(req.Title, "title", "Title", "required", "")
	}

	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		sl.ReportError(req.Content, "content", "Content", "required", "")
	}
}
