package form

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldKind selects the check applied to a field.
type FieldKind int

const (
	KindUnknown FieldKind = iota
	// KindText must be non-blank.
	KindText
	// KindOptionalText is never rejected.
	KindOptionalText
	// KindMobile must be exactly ten digits.
	KindMobile
	// KindOptionalMobile is empty or exactly ten digits.
	KindOptionalMobile
	// KindEmail must be a plausible address.
	KindEmail
	// KindCodeLabel needs both the code and the display name.
	KindCodeLabel
	// KindDecimal is an unsigned decimal bounded by Min and Max.
	KindDecimal
	// KindMoney is a positive amount with at most two decimal places.
	KindMoney
	// KindPercent is an amount with at most two decimal places, zero allowed.
	KindPercent
	// KindPattern must be non-blank and match Pattern.
	KindPattern
	// KindDate must be set.
	KindDate
	// KindEnum must be one of Options.
	KindEnum
)

var (
	mobilePattern    = regexp.MustCompile(`^\d{10}$`)
	decimalPattern   = regexp.MustCompile(`^\d+(\.\d+)?$`)
	twoPlacesPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Value is what the user entered for one field. Only the member matching the
// field's kind is read.
type Value struct {
	Text string
	Pair kernel.CodeLabel
	Date time.Time
}

func Text(s string) Value           { return Value{Text: s} }
func Pair(c kernel.CodeLabel) Value { return Value{Pair: c} }
func Date(t time.Time) Value        { return Value{Date: t} }

// Field describes one input and the messages shown when it is rejected.
//
// Required is used for blank values, Format for a pattern mismatch, Max and Min
// for KindDecimal bounds. KindCodeLabel uses Required for a missing code and
// Format for a missing label.
type Field struct {
	Name     string
	Kind     FieldKind
	Required string
	Format   string
	Max      string
	Min      string

	// Pattern is matched by KindPattern.
	Pattern *regexp.Regexp
	// Options is the allowed set for KindEnum.
	Options []string
	// Lower and Upper bound KindDecimal; Lower is exclusive when LowerOpen.
	Lower     *decimal.Decimal
	Upper     *decimal.Decimal
	LowerOpen bool
}

// Check runs the field's rule against v and returns the message to show, or
// ok=true when the value is accepted. Patterns are matched against the text as
// entered, so surrounding whitespace fails them.
func (f Field) Check(v Value) (string, bool) {
	text := v.Text
	blank := strings.TrimSpace(text) == ""

	switch f.Kind {
	case KindText:
		if blank {
			return f.Required, false
		}
	case KindOptionalText:
	case KindMobile:
		if utf8.RuneCountInString(text) < 10 {
			return f.Required, false
		}
		if !mobilePattern.MatchString(text) {
			return f.Format, false
		}
	case KindOptionalMobile:
		if text != "" && !mobilePattern.MatchString(text) {
			return f.Format, false
		}
	case KindEmail:
		if err := validate.Var(text, "required,email"); err != nil {
			return f.Format, false
		}
	case KindCodeLabel:
		if strings.TrimSpace(v.Pair.Code) == "" {
			return f.Required, false
		}
		if strings.TrimSpace(v.Pair.Label) == "" {
			return f.Format, false
		}
	case KindDecimal:
		if blank {
			return f.Required, false
		}
		return f.checkDecimal(text)
	case KindMoney:
		if blank {
			return f.Required, false
		}
		if !twoPlacesPattern.MatchString(text) {
			return f.Format, false
		}
		if decimal.RequireFromString(text).IsZero() {
			return f.Min, false
		}
	case KindPercent:
		if blank {
			return f.Required, false
		}
		if !twoPlacesPattern.MatchString(text) {
			return f.Format, false
		}
	case KindPattern:
		if blank {
			return f.Required, false
		}
		if f.Pattern != nil && !f.Pattern.MatchString(text) {
			return f.Format, false
		}
	case KindDate:
		if v.Date.IsZero() {
			return f.Required, false
		}
	case KindEnum:
		if !slices.Contains(f.Options, text) {
			return f.Format, false
		}
	case KindUnknown:
		return fmt.Sprintf("%s has no rule", f.Name), false
	default:
		return fmt.Sprintf("%s has no rule", f.Name), false
	}
	return "", true
}

func (f Field) checkDecimal(text string) (string, bool) {
	if !decimalPattern.MatchString(text) {
		return f.Format, false
	}
	n := decimal.RequireFromString(text)
	if f.Upper != nil && n.GreaterThan(*f.Upper) {
		return f.Max, false
	}
	if f.Lower != nil {
		if f.LowerOpen && n.LessThanOrEqual(*f.Lower) {
			return f.Min, false
		}
		if !f.LowerOpen && n.LessThan(*f.Lower) {
			return f.Min, false
		}
	}
	return "", true
}

// check runs f against v and records a failure under f.Name.
func check(into *errs.ValidationError, f Field, v Value) {
	if msg, ok := f.Check(v); !ok {
		into.Add(f.Name, msg)
	}
}

// ParseDecimal parses s leniently: blank or malformed input is zero. It serves
// figures derived while a section is still being edited.
func ParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }
