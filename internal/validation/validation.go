// Package validation implements the request validation pipeline for the
// register, login, and ai-config endpoints. Content rules are expressed as
// validator/v10 structs whose field order equals the contract's failure
// ordering: validator reports errors in struct field order, so the first
// reported error is always the first offending field.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/savdoai/console-api/internal/models"
)

// Error is a request validation failure carrying the localized message
// shown to the user. Every Error maps to an HTTP 400.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// Latin letters, Cyrillic block, and whitespace. Digits, punctuation,
	// and apostrophes are rejected, so names like "O'Connor" fail. Known
	// limitation carried over from the product's registration form.
	personNameRegex = regexp.MustCompile(`^[a-zA-Z\s\x{0400}-\x{04FF}]+$`)

	// Intentionally loose local@domain.tld shape; real verification is the
	// backend's confirmation email.
	simpleEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "person_name", func(fl validator.FieldLevel) bool {
		return personNameRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "simple_email", func(fl validator.FieldLevel) bool {
		return simpleEmailRegex.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// registrationRules: field order is the contract's check order.
// Length bounds count runes, matching validator's string semantics.
type registrationRules struct {
	Name         string `validate:"min=2,max=100,person_name"`
	Email        string `validate:"simple_email,max=254"`
	CompanyName  string `validate:"min=2,max=100"`
	Password     string `validate:"min=6,max=128"`
	TariffPlanID int    `validate:"oneof=1 2 3"`
}

// Registration validates a register submission and returns the normalized
// payload ready for forwarding, or the first validation failure.
//
// Presence of the four required text fields is checked before any content
// rule: a missing company name reads exactly like a missing password.
func Registration(req *models.RegisterRequest) (*models.RegistrationSubmission, *Error) {
	if req.Name == "" || req.Email == "" || req.CompanyName == "" || req.Password == "" {
		return nil, &Error{Message: models.MsgAllFieldsRequired}
	}

	rules := registrationRules{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		Password:     req.Password,
		TariffPlanID: req.TariffPlanID,
	}

	if err := validate.Struct(rules); err != nil {
		return nil, &Error{Message: registrationMessage(firstError(err))}
	}

	return &models.RegistrationSubmission{
		Name:                 rules.Name,
		Email:                strings.ToLower(rules.Email),
		CompanyName:          rules.CompanyName,
		Password:             req.Password,
		PasswordConfirmation: req.Password,
		TariffPlanID:         req.TariffPlanID,
	}, nil
}

func registrationMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		return models.MsgNameInvalid
	case "Email":
		return models.MsgEmailInvalid
	case "CompanyName":
		return models.MsgCompanyNameInvalid
	case "Password":
		if fe.Tag() == "max" {
			return models.MsgPasswordTooLong
		}
		return models.MsgPasswordTooShort
	case "TariffPlanID":
		return models.MsgTariffRequired
	}
	return models.MsgAllFieldsRequired
}

// aiConfigRules: context length, then list size, then per-item length.
type aiConfigRules struct {
	AIContext  string   `validate:"min=30,max=1500"`
	Embeddings []string `validate:"max=20,dive,min=10,max=1000"`
}

// AIConfig validates an AI-assistant configuration submission. The untyped
// request fields are probed first (required, then shape), then trimmed and
// filtered, then length-checked. Blank embeddings are dropped before any
// per-item rule runs, so a list of only whitespace entries validates as an
// empty list. Per-item failures do not identify the offending index.
func AIConfig(req *models.AIConfigRequest) (*models.AIConfigSubmission, *Error) {
	if req.AIContext == nil || req.AIContext == "" {
		return nil, &Error{Message: models.MsgAIContextRequired}
	}

	aiContext, ok := req.AIContext.(string)
	if !ok {
		return nil, &Error{Message: models.MsgInvalidShape}
	}
	rawList, ok := req.Embeddings.([]any)
	if !ok {
		return nil, &Error{Message: models.MsgInvalidShape}
	}

	embeddings := make([]string, 0, len(rawList))
	for _, item := range rawList {
		s, ok := item.(string)
		if !ok {
			return nil, &Error{Message: models.MsgInvalidShape}
		}
		if s = strings.TrimSpace(s); s != "" {
			embeddings = append(embeddings, s)
		}
	}

	rules := aiConfigRules{
		AIContext:  strings.TrimSpace(aiContext),
		Embeddings: embeddings,
	}

	if err := validate.Struct(rules); err != nil {
		return nil, &Error{Message: aiConfigMessage(firstError(err))}
	}

	sub := &models.AIConfigSubmission{
		AIContext:  rules.AIContext,
		Embeddings: embeddings,
	}
	if req.CompanyID != nil && req.CompanyID != "" {
		sub.CompanyID = req.CompanyID
	}
	return sub, nil
}

func aiConfigMessage(fe validator.FieldError) string {
	switch {
	case fe.StructField() == "AIContext":
		return models.MsgAIContextTooShort
	case fe.StructField() == "Embeddings" && fe.Tag() == "max":
		return models.MsgTooManyEmbeddings
	default:
		// dive error on Embeddings[i]
		return models.MsgEmbeddingTooShort
	}
}

// Login validates a login submission. Field-level rules belong to the
// backend; only presence is enforced here.
func Login(req *models.LoginRequest) (*models.LoginSubmission, *Error) {
	if req.Email == "" || req.Password == "" {
		return nil, &Error{Message: models.MsgAllFieldsRequired}
	}

	return &models.LoginSubmission{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
	}, nil
}

func firstError(err error) validator.FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		panic(err)
	}
	return verrs[0]
}
