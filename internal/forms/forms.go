// Package forms validates raw request fields and coerces them into typed
// records. Validation is all-or-nothing: callers either get a complete
// record or a set of field-level error messages, never both.
package forms

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"school-site-backend/internal/model"
)

// FieldErrors maps a form field name to a human-readable error message.
type FieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the submitted field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// AdmissionForm holds the raw admission fields prior to coercion. Age stays
// a string here so that a non-numeric value produces a field error instead
// of a bind failure.
type AdmissionForm struct {
	StudentName  string `form:"student_name" validate:"required,max=200"`
	StudentClass string `form:"student_class" validate:"required"`
	Age          string `form:"age" validate:"required"`
	ParentEmail  string `form:"parent_email" validate:"required,email,max=150"`
	Phone        string `form:"phone" validate:"omitempty,max=50"`
	Message      string `form:"message"`
}

// LoginForm holds the raw admin login fields.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// NoticeForm holds the raw notice fields.
type NoticeForm struct {
	Title   string `form:"title" validate:"required,max=200"`
	Content string `form:"content" validate:"required"`
}

// ParseAdmission validates admission fields and returns the typed record
// (without its timestamp, which the caller stamps at insert time).
func ParseAdmission(values url.Values) (*model.Admission, FieldErrors) {
	form := AdmissionForm{
		StudentName:  strings.TrimSpace(values.Get("student_name")),
		StudentClass: strings.TrimSpace(values.Get("student_class")),
		Age:          strings.TrimSpace(values.Get("age")),
		ParentEmail:  strings.TrimSpace(values.Get("parent_email")),
		Phone:        strings.TrimSpace(values.Get("phone")),
		Message:      strings.TrimSpace(values.Get("message")),
	}

	errs := check(form)
	age, convErr := strconv.Atoi(form.Age)
	if form.Age != "" && convErr != nil {
		errs["age"] = "must be a whole number"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &model.Admission{
		StudentName:  form.StudentName,
		StudentClass: form.StudentClass,
		Age:          age,
		ParentEmail:  form.ParentEmail,
		Phone:        form.Phone,
		Message:      form.Message,
	}, nil
}

// ParseLogin validates login credentials. It performs no credential check;
// that belongs to the auth layer.
func ParseLogin(values url.Values) (*LoginForm, FieldErrors) {
	form := LoginForm{
		Email:    strings.TrimSpace(values.Get("email")),
		Password: values.Get("password"),
	}
	if errs := check(form); len(errs) > 0 {
		return nil, errs
	}
	return &form, nil
}

// ParseNotice validates notice fields and returns the typed record without
// its timestamp.
func ParseNotice(values url.Values) (*model.Notice, FieldErrors) {
	form := NoticeForm{
		Title:   strings.TrimSpace(values.Get("title")),
		Content: strings.TrimSpace(values.Get("content")),
	}
	if errs := check(form); len(errs) > 0 {
		return nil, errs
	}
	return &model.Notice{
		Title:   form.Title,
		Content: form.Content,
	}, nil
}

func check(form any) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	for _, fe := range err.(validator.ValidationErrors) {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "invalid value"
	}
}
