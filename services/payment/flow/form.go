package flow

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/internal/pkg/money"
)

// Form field names as exchanged with the presentation layer
const (
	FieldPayerAccount     = "payerAccount"
	FieldRecipientAccount = "recipientAccount"
	FieldAmount           = "amount"
	FieldReferenceNumber  = "referenceNumber"
	FieldPurpose          = "purpose"
	FieldPaymentCode      = "paymentCode"
	FieldOTP              = "otp"
)

// MaxReferenceLength is the longest accepted reference number
const MaxReferenceLength = 20

var referencePattern = regexp.MustCompile(`^[0-9-]*$`)

// FieldSetter is the narrow mutation interface handed to steps that write into the draft
type FieldSetter interface {
	SetField(name, value string) error
}

// Draft is the payment being composed
type Draft struct {
	PayerAccountID      string
	PayerCurrencyID     string
	PayerCurrencyCode   string
	RecipientAccount    string
	RecipientCurrencyID *string
	Amount              *decimal.Decimal
	AmountInput         string
	ReferenceNumber     string
	Purpose             string
	PaymentCode         string
	OTP                 string
}

// NewDraft creates an empty draft with the default payment code
func NewDraft(defaultCode string) *Draft {
	if defaultCode == "" {
		defaultCode = DefaultPaymentCode
	}
	return &Draft{PaymentCode: defaultCode}
}

// SetField assigns a raw field value. The payer account is not settable by name because
// selecting it also selects a currency and a limit.
func (d *Draft) SetField(name, value string) error {
	switch name {
	case FieldRecipientAccount:
		d.RecipientAccount = value
	case FieldAmount:
		d.AmountInput = value
		d.Amount = money.ParseAmount(value)
	case FieldReferenceNumber:
		d.ReferenceNumber = value
	case FieldPurpose:
		d.Purpose = value
	case FieldPaymentCode:
		d.PaymentCode = value
	case FieldOTP:
		d.OTP = value
	default:
		return newError(KindValidation, ReasonUnknownField, name, "Unknown field",
			"Field "+name+" cannot be edited.")
	}
	return nil
}

// schema is the validated projection of a draft
type schema struct {
	PayerAccount     string `json:"payerAccount" validate:"required"`
	RecipientAccount string `json:"recipientAccount" validate:"notblank"`
	Amount           string `json:"amount" validate:"required,positive"`
	ReferenceNumber  string `json:"referenceNumber" validate:"max=20,refnum"`
	Purpose          string `json:"purpose" validate:"notblank"`
}

var fieldMessages = map[string]map[string]string{
	FieldPayerAccount:     {"required": "Payer account is required."},
	FieldRecipientAccount: {"notblank": "Recipient account is required."},
	FieldAmount: {
		"required": "Amount must be greater than 0.",
		"positive": "Amount must be greater than 0.",
	},
	FieldReferenceNumber: {
		"max":    "Maximum 20 characters.",
		"refnum": "Only numbers and '-' are allowed",
	},
	FieldPurpose: {"notblank": "Payment purpose is required."},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("refnum", func(fl validator.FieldLevel) bool {
		return referencePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
	return v
}

// Validate checks the draft against the form schema and returns one error per invalid field
func (d *Draft) Validate() []models.FieldError {
	s := schema{
		PayerAccount:     d.PayerAccountID,
		RecipientAccount: d.RecipientAccount,
		ReferenceNumber:  d.ReferenceNumber,
		Purpose:          d.Purpose,
	}
	if d.Amount != nil {
		s.Amount = d.Amount.String()
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fieldMessages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = "Invalid value."
		}
		out = append(out, models.FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// View renders the draft fields
func (d *Draft) View() models.FormView {
	v := models.FormView{
		PayerAccountID:    d.PayerAccountID,
		PayerCurrency:     d.PayerCurrencyCode,
		RecipientAccount:  d.RecipientAccount,
		RecipientCurrency: d.RecipientCurrencyID,
		ReferenceNumber:   d.ReferenceNumber,
		Purpose:           d.Purpose,
		PaymentCode:       d.PaymentCode,
	}
	if d.Amount != nil {
		canonical := d.Amount.StringFixed(money.Places)
		v.Amount = &canonical
		v.AmountDisplay = money.Format(*d.Amount)
	}
	return v
}
