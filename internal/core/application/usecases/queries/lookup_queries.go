package queries

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/guard"
)

var (
	ErrListCountriesQueryIsNotConstructed = errors.New(
		"ListCountriesQuery must be created via NewListCountriesQuery constructor",
	)
	ErrListStatesQueryIsNotConstructed = errors.New(
		"ListStatesQuery must be created via NewListStatesQuery constructor",
	)
)

var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// ListCountriesQuery lists the countries offered by the address pickers.
type ListCountriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCountriesQuery() ListCountriesQuery {
	return ListCountriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCountriesQuery) Validate() error {
	return q.guard.Validate(ErrListCountriesQueryIsNotConstructed)
}

// ListStatesQuery lists the states of a country.
//
// RequestKey names the picker asking, typically "<draft id>/<field>". A newer
// query with the same key cancels an older one still running, so a seller who
// switches country quickly never sees the states of the previous choice.
type ListStatesQuery struct {
	countryCode string
	requestKey  string
	guard       guard.ConstructorGuard
}

func NewListStatesQuery(countryCode, requestKey string) (ListStatesQuery, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return ListStatesQuery{}, errs.NewValueIsRequiredError("country code")
	}
	if !countryCodePattern.MatchString(code) {
		return ListStatesQuery{}, errs.NewValueIsInvalidErrorWithCause("country code",
			fmt.Errorf("%q is not a 2-letter country code", countryCode))
	}

	return ListStatesQuery{
		countryCode: code,
		requestKey:  strings.TrimSpace(requestKey),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListStatesQuery) Validate() error {
	return q.guard.Validate(ErrListStatesQueryIsNotConstructed)
}

func (q ListStatesQuery) CountryCode() string { return q.countryCode }
func (q ListStatesQuery) RequestKey() string  { return q.requestKey }
