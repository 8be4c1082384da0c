package queries

import (
	"context"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/ports"
	"orderwizard/internal/pkg/latest"
)

// ListCountriesQueryHandler reads countries from the country directory.
type ListCountriesQueryHandler struct {
	directory ports.CountryDirectory
}

func NewListCountriesQueryHandler(directory ports.CountryDirectory) ListCountriesQueryHandler {
	return ListCountriesQueryHandler{directory: directory}
}

func (h ListCountriesQueryHandler) Handle(ctx context.Context, query ListCountriesQuery) ([]kernel.CodeLabel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.directory.Countries(ctx)
}

// ListStatesQueryHandler reads states from the country directory. Lookups
// sharing a request key supersede each other: only the newest one returns
// states, older ones fail with latest.ErrSuperseded.
type ListStatesQueryHandler struct {
	directory ports.CountryDirectory
	inflight  *latest.Group[[]kernel.CodeLabel]
}

func NewListStatesQueryHandler(directory ports.CountryDirectory) ListStatesQueryHandler {
	return ListStatesQueryHandler{
		directory: directory,
		inflight:  &latest.Group[[]kernel.CodeLabel]{},
	}
}

func (h ListStatesQueryHandler) Handle(ctx context.Context, query ListStatesQuery) ([]kernel.CodeLabel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.inflight.Do(ctx, query.RequestKey(), func(ctx context.Context) ([]kernel.CodeLabel, error) {
		return h.directory.States(ctx, query.CountryCode())
	})
}
