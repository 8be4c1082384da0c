package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed api/openapi.yaml
var contractYAML []byte

var registerOnce sync.Once

// Contract is the API description the server is checked against. It also
// backs the Swagger UI.
type Contract struct {
	doc    *openapi3.T
	router routers.Router
	json   string
}

// LoadContract parses and validates the embedded OpenAPI document.
func LoadContract(ctx context.Context) (*Contract, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(contractYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAPI router: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render OpenAPI document: %w", err)
	}

	return &Contract{doc: doc, router: router, json: string(raw)}, nil
}

// ReadDoc returns the document as JSON.
func (c *Contract) ReadDoc() string {
	return c.json
}

// ValidateRequest checks parameters and body of a request the document
// describes. Requests for paths it does not describe pass.
func (c *Contract) ValidateRequest(req *http.Request) error {
	route, pathParams, err := c.router.FindRoute(req)
	if err != nil {
		if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
			return nil
		}
		return err
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			MultiError: false,
		},
	}
	return openapi3filter.ValidateRequest(req.Context(), input)
}

// Middleware rejects requests that do not match the document with 400.
func (c *Contract) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if err := c.ValidateRequest(ctx.Request()); err != nil {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Request does not match the API: " + err.Error(),
				})
			}
			return next(ctx)
		}
	}
}

// registerSwagger publishes the document to the Swagger UI. Only the first
// contract is published.
func registerSwagger(c *Contract) {
	registerOnce.Do(func() {
		swag.Register(swag.Name, c)
	})
}
