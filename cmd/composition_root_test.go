package cmd

import (
	"context"
	"testing"
	"time"

	"orderwizard/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		OrdersAPIURL:   "http://orders.local",
		OrdersAPIToken: "token",
	}
}

func TestNewCompositionRoot_Defaults(t *testing.T) {
	root, err := NewCompositionRoot(validConfig(), nil)

	require.NoError(t, err)
	assert.Equal(t, defaultDraftTTL, root.draftTTL)
	assert.Equal(t, "2765.16", root.calculator.Surcharge().String())
	assert.NotNil(t, root.countries)
	assert.NotNil(t, root.rates)
}

func TestNewCompositionRoot_ParsesOverrides(t *testing.T) {
	configs := validConfig()
	configs.ShippingSurcharge = "100.5"
	configs.DraftTTL = "72h"
	configs.HSNPolicy = "4-8"
	configs.OrderIDRequired = "true"

	root, err := NewCompositionRoot(configs, nil)

	require.NoError(t, err)
	assert.Equal(t, "100.5", root.calculator.Surcharge().String())
	assert.Equal(t, 72*time.Hour, root.draftTTL)
}

func TestNewCompositionRoot_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing orders url", func(c *Config) { c.OrdersAPIURL = "" }},
		{"surcharge not a number", func(c *Config) { c.ShippingSurcharge = "abc" }},
		{"negative surcharge", func(c *Config) { c.ShippingSurcharge = "-1" }},
		{"unknown hsn policy", func(c *Config) { c.HSNPolicy = "6" }},
		{"order id flag", func(c *Config) { c.OrderIDRequired = "maybe" }},
		{"draft ttl", func(c *Config) { c.DraftTTL = "a month" }},
		{"cache ttl", func(c *Config) { c.CountriesCacheTTL = "daily" }},
		{"service timeout", func(c *Config) { c.ServiceTimeout = "15" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configs := validConfig()
			tt.mutate(&configs)

			_, err := NewCompositionRoot(configs, nil)

			assert.Error(t, err)
		})
	}
}

func TestCompositionRoot_ListCountriesReachesUpstream(t *testing.T) {
	root, err := NewCompositionRoot(validConfig(), nil)
	require.NoError(t, err)

	handler := root.CreateListCountriesQueryHandler()
	_, err = handler.Handle(canceledContext(), queries.NewListCountriesQuery())

	assert.Error(t, err, "the upstream call fails on a canceled context")
}

func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
