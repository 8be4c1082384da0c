// Package countries looks up countries and their states for the address
// pickers.
package countries

import (
	"cmp"
	"context"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"orderwizard/internal/adapters/out/httpclient"
	"orderwizard/internal/core/domain/model/kernel"
)

// Directory reads countries from a restcountries-compatible API and states
// from a countrystatecity-compatible API.
type Directory struct {
	countries *httpclient.Client
	states    *httpclient.Client
}

// NewDirectory uses countries for the country list and states for the per
// country state lists. The states client is expected to carry the
// X-CSCAPI-KEY header.
func NewDirectory(countries, states *httpclient.Client) *Directory {
	return &Directory{countries: countries, states: states}
}

type countryDTO struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2 string `json:"cca2"`
}

type stateDTO struct {
	Name string `json:"name"`
	ISO2 string `json:"iso2"`
}

// Countries returns every country sorted by name.
func (d *Directory) Countries(ctx context.Context) ([]kernel.CodeLabel, error) {
	var dtos []countryDTO
	if err := d.countries.Do(ctx, http.MethodGet, "/v3.1/all?fields=name,cca2", nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]kernel.CodeLabel, 0, len(dtos))
	for _, c := range dtos {
		entry := kernel.CodeLabel{Code: c.CCA2, Label: c.Name.Common}
		if entry.Code == "" || entry.Label == "" {
			continue
		}
		out = append(out, entry)
	}
	sortByLabel(out)
	return out, nil
}

// States returns the states of countryCode sorted by name.
func (d *Directory) States(ctx context.Context, countryCode string) ([]kernel.CodeLabel, error) {
	path := "/v1/countries/" + url.PathEscape(strings.ToUpper(countryCode)) + "/states"

	var dtos []stateDTO
	if err := d.states.Do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]kernel.CodeLabel, 0, len(dtos))
	for _, s := range dtos {
		if s.Name == "" {
			continue
		}
		out = append(out, kernel.CodeLabel{Code: s.ISO2, Label: s.Name})
	}
	sortByLabel(out)
	return out, nil
}

func sortByLabel(entries []kernel.CodeLabel) {
	slices.SortFunc(entries, func(a, b kernel.CodeLabel) int {
		return cmp.Compare(a.Label, b.Label)
	})
}
