package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/application/usecases/queries"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/kyc"
	"orderwizard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers are the use cases the API exposes.
type Handlers struct {
	// Command handlers
	StartDraft           commands.StartDraftCommandHandler
	SubmitConsignor      commands.SubmitConsignorCommandHandler
	SubmitConsignee      commands.SubmitConsigneeCommandHandler
	SubmitShipment       commands.SubmitShipmentCommandHandler
	RequestQuotes        commands.RequestQuotesCommandHandler
	SelectShippingOption commands.SelectShippingOptionCommandHandler
	ReopenSection        commands.ReopenSectionCommandHandler
	EditDraft            commands.DraftEditCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	KycReview            commands.KycReviewCommandHandler

	// Query handlers
	GetDraft        queries.GetDraftQueryHandler
	ListCountries   queries.ListCountriesQueryHandler
	ListStates      queries.ListStatesQueryHandler
	GetKycCustomers queries.GetKycCustomersQueryHandler
	GetKycDocuments queries.GetKycDocumentsQueryHandler
}

// Server handles HTTP requests for the wizard and the KYC dashboard.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers, logger: logger()}
}

// StartDraft handles POST /api/v1/drafts.
func (s *Server) StartDraft(ctx echo.Context) error {
	cmd, err := commands.NewStartDraftCommand(kernel.NewUUID())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.StartDraft.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusCreated, cmd.DraftID())
}

// GetDraft handles GET /api/v1/drafts/{id}.
func (s *Server) GetDraft(ctx echo.Context) error {
	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondDraft(ctx, http.StatusOK, id)
}

func (s *Server) SubmitConsignor(ctx echo.Context) error {
	var body Consignor
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSubmitConsignorCommand(id, body.toDomain())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SubmitConsignor.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

func (s *Server) SubmitConsignee(ctx echo.Context) error {
	var body Consignee
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSubmitConsigneeCommand(id, body.toDomain())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SubmitConsignee.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

// SubmitShipment handles POST /api/v1/drafts/{id}/shipment. The order service
// checks the invoice first; its refusal is returned as a 422 with its message.
func (s *Server) SubmitShipment(ctx echo.Context) error {
	var body Shipment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSubmitShipmentCommand(id, body.toDomain())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SubmitShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

func (s *Server) RequestQuotes(ctx echo.Context) error {
	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRequestQuotesCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.h.RequestQuotes.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

func (s *Server) SelectShippingOption(ctx echo.Context) error {
	var body ShippingOptionChoice
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSelectShippingOptionCommand(id, body.OptionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SelectShippingOption.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

func (s *Server) ReopenSection(ctx echo.Context) error {
	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	section, err := draft.ParseSection(ctx.Param("section"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReopenSectionCommand(id, section)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ReopenSection.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

// GoBack handles POST /api/v1/drafts/{id}/back.
func (s *Server) GoBack(ctx echo.Context) error {
	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewGoBackCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ReopenSection.HandleBack(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

func (s *Server) AddItem(ctx echo.Context) error {
	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.EditDraft.HandleAddItem(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

func (s *Server) RemoveItem(ctx echo.Context) error {
	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, "Item index must be a number")
	}

	cmd, err := commands.NewRemoveItemCommand(id, index)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.EditDraft.HandleRemoveItem(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

// PlaceOrder handles POST /api/v1/drafts/{id}/place. The response carries the
// order reference and the draft, which is empty again.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	reference, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.loadDraft(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlacedOrder{OrderReference: reference, Draft: view})
}

func (s *Server) ResetDraft(ctx echo.Context) error {
	id, err := draftID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewResetDraftCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.EditDraft.HandleReset(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id)
}

// ListCountries handles GET /api/v1/countries.
func (s *Server) ListCountries(ctx echo.Context) error {
	countries, err := s.h.ListCountries.Handle(ctx.Request().Context(), queries.NewListCountriesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCodeLabels(countries))
}

// ListStates handles GET /api/v1/countries/{code}/states.
func (s *Server) ListStates(ctx echo.Context) error {
	query, err := queries.NewListStatesQuery(ctx.Param("code"), ctx.QueryParam("requestKey"))
	if err != nil {
		return s.fail(ctx, err)
	}

	states, err := s.h.ListStates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCodeLabels(states))
}

// GetKycCustomers handles GET /api/v1/kyc/customers.
func (s *Server) GetKycCustomers(ctx echo.Context) error {
	query, err := queries.NewGetKycCustomersQuery(ctx.QueryParam("type"))
	if err != nil {
		return s.fail(ctx, err)
	}

	customers, err := s.h.GetKycCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]KycCustomer, len(customers))
	for i, c := range customers {
		response[i] = toKycCustomer(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) GetKycDocuments(ctx echo.Context) error {
	query, err := queries.NewGetKycDocumentsQuery(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	documents, err := s.h.GetKycDocuments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]KycDocument, len(documents))
	for i, d := range documents {
		response[i] = toKycDocument(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) ToggleDocumentSelection(ctx echo.Context) error {
	documentID, err := strconv.Atoi(ctx.Param("docId"))
	if err != nil {
		return badRequest(ctx, "Document id must be a number")
	}

	cmd, err := commands.NewToggleDocumentSelectionCommand(ctx.Param("id"), documentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.KycReview.HandleToggleSelection(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) UpdateDocumentStatus(ctx echo.Context) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	documentID, err := strconv.Atoi(ctx.Param("docId"))
	if err != nil {
		return badRequest(ctx, "Document id must be a number")
	}

	cmd, err := commands.NewUpdateDocumentStatusCommand(ctx.Param("id"), documentID, kyc.DocumentStatus(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.KycReview.HandleUpdateDocumentStatus(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SubmitKycDocuments handles POST /api/v1/kyc/customers/{id}/submit.
func (s *Server) SubmitKycDocuments(ctx echo.Context) error {
	cmd, err := commands.NewSubmitKycDocumentsCommand(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.KycReview.HandleSubmit(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) UpdateCsbStatus(ctx echo.Context) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCsbStatusCommand(ctx.Param("id"), kyc.CsbStatus(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.KycReview.HandleUpdateCsbStatus(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondDraft(ctx echo.Context, status int, id kernel.UUID) error {
	view, err := s.loadDraft(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, view)
}

func (s *Server) loadDraft(ctx echo.Context, id kernel.UUID) (Draft, error) {
	query, err := queries.NewGetDraftQuery(id)
	if err != nil {
		return Draft{}, err
	}

	view, err := s.h.GetDraft.Handle(ctx.Request().Context(), query)
	if err != nil {
		return Draft{}, err
	}
	return toDraft(view), nil
}

func draftID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("draft id", err)
	}
	return id, nil
}
