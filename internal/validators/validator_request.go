package validators

import (
	"context"
	"strings"

	"github.com/ddanshin/staffdir/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

// RequestValidator validates inbound API payloads: authentication
// credentials, new employee records and partial employee updates.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Employee:
		return v.validateEmployee(ctx, value, fields...)
	case *models.Employee:
		return v.validateEmployee(ctx, *value, fields...)

	case models.EmployeeUpdate:
		return v.validateEmployeeUpdate(ctx, value, fields...)
	case *models.EmployeeUpdate:
		return v.validateEmployeeUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if creds.Email == "" || creds.Password == "" {
		return ErrEmailPasswordRequired
	}

	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !IsValidEmail(creds.Email) {
				return ErrInvalidEmailFormat
			}
		case FieldPassword:
			// presence is checked above; no further password rules are
			// enforced here, the identity service owns password policy
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEmployee(ctx context.Context, employee models.Employee, fields ...string) error {
	if employee.Name == "" || employee.Email == "" {
		return ErrNameEmailRequired
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(employee.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !IsValidEmail(employee.Email) {
				return ErrInvalidEmailFormat
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEmployeeUpdate(ctx context.Context, update models.EmployeeUpdate, fields ...string) error {
	if update.Empty() {
		return ErrNoDataProvided
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	// only fields present in the update are checked; department and role
	// are passed through unmodified
	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if update.Email != nil && !IsValidEmail(*update.Email) {
				return ErrInvalidEmailFormat
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
