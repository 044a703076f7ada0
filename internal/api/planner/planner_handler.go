package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	appMiddleware "github.com/FACorreiaa/wanderplan/app/middleware"
	"github.com/FACorreiaa/wanderplan/internal/api"
	"github.com/FACorreiaa/wanderplan/internal/api/budget"
	"github.com/FACorreiaa/wanderplan/internal/api/export"
	"github.com/FACorreiaa/wanderplan/internal/api/maps"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

// SessionCreatedResponse is returned once per session; the token is needed
// for every other planner call.
type SessionCreatedResponse struct {
	SessionID string   `json:"sessionId"`
	Token     string   `json:"token"`
	TokenType string   `json:"tokenType" example:"Bearer"`
	Snapshot  Snapshot `json:"snapshot"`
}

type ActionResponse struct {
	Transitioned bool     `json:"transitioned"`
	Snapshot     Snapshot `json:"snapshot"`
}

type RouteResponse struct {
	DayNumber int             `json:"dayNumber"`
	Mode      maps.TravelMode `json:"mode"`
	URL       string          `json:"url"`
}

// SubmitLimiter throttles submits, the only action that calls the model.
type SubmitLimiter interface {
	AllowRequest(r *http.Request) (bool, time.Duration)
}

type HandlerImpl struct {
	store    *Store
	tokens   *appMiddleware.TokenManager
	limiter  SubmitLimiter
	timezone func() (export.TimezoneResolver, error)
	logger   *slog.Logger
}

// NewHandlerImpl wires the planner endpoints. limiter may be nil; a nil
// timezone lookup uses the bundled tzf finder.
func NewHandlerImpl(store *Store, tokens *appMiddleware.TokenManager, limiter SubmitLimiter, timezone func() (export.TimezoneResolver, error), logger *slog.Logger) *HandlerImpl {
	if timezone == nil {
		timezone = export.DefaultTimezoneResolver
	}
	return &HandlerImpl{
		store:    store,
		tokens:   tokens,
		limiter:  limiter,
		timezone: timezone,
		logger:   logger,
	}
}

func (h *HandlerImpl) startSpan(r *http.Request, name, route string) (*http.Request, trace.Span) {
	ctx, span := otel.Tracer("PlannerHandler").Start(r.Context(), name, trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/planner/sessions"+route),
	))
	return r.WithContext(ctx), span
}

// writeError maps domain errors onto status codes.
func (h *HandlerImpl) writeError(w http.ResponseWriter, r *http.Request, span trace.Span, l *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrSessionNotFound), errors.Is(err, types.ErrDayNotFound), errors.Is(err, types.ErrNoActivities):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrItineraryNotReady):
		status = http.StatusConflict
	case errors.Is(err, ErrInvalidAction), errors.Is(err, maps.ErrInvalidTravelMode):
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "Request failed", slog.Any("error", err))
	} else {
		l.WarnContext(r.Context(), "Request rejected", slog.Int("status", status), slog.Any("error", err))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	api.ErrorResponse(w, r, status, err.Error())
}

// session resolves {sessionID} and checks it against the bearer token.
func (h *HandlerImpl) session(w http.ResponseWriter, r *http.Request, span trace.Span, l *slog.Logger) (*Session, bool) {
	sessionID := chi.URLParam(r, "sessionID")
	span.SetAttributes(attribute.String("session.id", sessionID))

	tokenSessionID, ok := appMiddleware.GetSessionIDFromContext(r.Context())
	if !ok || tokenSessionID != sessionID {
		l.WarnContext(r.Context(), "Token does not grant access to session", slog.String("session_id", sessionID))
		span.SetStatus(codes.Error, "Forbidden")
		api.ErrorResponse(w, r, http.StatusForbidden, "Token does not grant access to this session")
		return nil, false
	}

	sess, err := h.store.Get(sessionID)
	if err != nil {
		h.writeError(w, r, span, l, err)
		return nil, false
	}
	return sess, true
}

func (h *HandlerImpl) itinerary(w http.ResponseWriter, r *http.Request, span trace.Span, l *slog.Logger) (*Session, *types.TripItinerary, bool) {
	sess, ok := h.session(w, r, span, l)
	if !ok {
		return nil, nil, false
	}
	it, err := sess.Itinerary()
	if err != nil {
		h.writeError(w, r, span, l, err)
		return nil, nil, false
	}
	return sess, it, true
}

// CreateSession godoc
// @Summary      Start a planner session
// @Description  Creates a planner session in the landing view and returns a bearer token scoped to it.
// @Tags         Planner
// @Produce      json
// @Success      201 {object} planner.SessionCreatedResponse
// @Failure      500 {object} api.Response
// @Router       /planner/sessions [post]
func (h *HandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "CreateSession", "")
	defer span.End()
	l := h.logger.With(slog.String("handler", "CreateSession"))

	sess := h.store.Create(r.Context())
	token, err := h.tokens.Issue(sess.ID)
	if err != nil {
		_ = h.store.Delete(sess.ID)
		h.writeError(w, r, span, l, err)
		return
	}

	span.SetAttributes(attribute.String("session.id", sess.ID))
	span.SetStatus(codes.Ok, "Session created")
	api.WriteJSONResponse(w, r, http.StatusCreated, SessionCreatedResponse{
		SessionID: sess.ID,
		Token:     token,
		TokenType: "Bearer",
		Snapshot:  sess.Snapshot(),
	})
}

// GetSession godoc
// @Summary      Get session state
// @Tags         Planner
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} planner.Snapshot
// @Failure      403 {object} api.Response
// @Failure      404 {object} api.Response
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetSession", "/{sessionID}")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetSession"))

	sess, ok := h.session(w, r, span, l)
	if !ok {
		return
	}
	span.SetStatus(codes.Ok, "Session returned")
	api.WriteJSONResponse(w, r, http.StatusOK, sess.Snapshot())
}

// DeleteSession godoc
// @Summary      End a planner session
// @Description  Drops the session and cancels any generation still running for it.
// @Tags         Planner
// @Param        sessionID path string true "Session ID"
// @Success      204
// @Failure      403 {object} api.Response
// @Failure      404 {object} api.Response
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID} [delete]
func (h *HandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "DeleteSession", "/{sessionID}")
	defer span.End()
	l := h.logger.With(slog.String("handler", "DeleteSession"))

	sess, ok := h.session(w, r, span, l)
	if !ok {
		return
	}
	if err := h.store.Delete(sess.ID); err != nil {
		h.writeError(w, r, span, l, err)
		return
	}
	l.InfoContext(r.Context(), "Planner session deleted", slog.String("session_id", sess.ID))
	span.SetStatus(codes.Ok, "Session deleted")
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// DispatchAction godoc
// @Summary      Dispatch a planner action
// @Description  Applies one user action to the session. Actions that are not valid in the current view leave the state unchanged and report transitioned=false.
// @Tags         Planner
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        action body planner.ActionRequest true "Action"
// @Success      200 {object} planner.ActionResponse
// @Failure      400 {object} api.Response
// @Failure      403 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      429 {string} string "Too many submits"
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID}/actions [post]
func (h *HandlerImpl) DispatchAction(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "DispatchAction", "/{sessionID}/actions")
	defer span.End()
	l := h.logger.With(slog.String("handler", "DispatchAction"))

	sess, ok := h.session(w, r, span, l)
	if !ok {
		return
	}

	var req ActionRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		h.writeError(w, r, span, l, fmt.Errorf("%w: %v", ErrInvalidAction, err))
		return
	}
	action, err := req.ToAction()
	if err != nil {
		h.writeError(w, r, span, l, err)
		return
	}
	span.SetAttributes(attribute.String("action.type", string(action.Type)))

	// A submit the guard would ignore must not spend a token.
	if action.Type == ActionSubmit && h.limiter != nil && submittable(sess.Snapshot()) {
		if ok, delay := h.limiter.AllowRequest(r); !ok {
			span.SetStatus(codes.Error, "Rate limited")
			appMiddleware.TooManyRequests(w, delay)
			return
		}
	}

	snapshot, transitioned := sess.Dispatch(r.Context(), action)
	span.SetAttributes(attribute.Bool("action.transitioned", transitioned), attribute.String("view", string(snapshot.View)))
	span.SetStatus(codes.Ok, "Action dispatched")
	api.WriteJSONResponse(w, r, http.StatusOK, ActionResponse{Transitioned: transitioned, Snapshot: snapshot})
}

// GetItinerary godoc
// @Summary      Get the generated itinerary
// @Tags         Planner
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.TripItinerary
// @Failure      409 {object} api.Response "No itinerary yet"
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID}/itinerary [get]
func (h *HandlerImpl) GetItinerary(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetItinerary", "/{sessionID}/itinerary")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetItinerary"))

	_, it, ok := h.itinerary(w, r, span, l)
	if !ok {
		return
	}
	span.SetStatus(codes.Ok, "Itinerary returned")
	api.WriteJSONResponse(w, r, http.StatusOK, it)
}

// GetBudget godoc
// @Summary      Get the cost breakdown
// @Description  Category totals for all travelers, zero categories omitted.
// @Tags         Planner
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} budget.Breakdown
// @Failure      409 {object} api.Response "No itinerary yet"
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID}/budget [get]
func (h *HandlerImpl) GetBudget(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetBudget", "/{sessionID}/budget")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetBudget"))

	sess, it, ok := h.itinerary(w, r, span, l)
	if !ok {
		return
	}
	span.SetStatus(codes.Ok, "Budget returned")
	api.WriteJSONResponse(w, r, http.StatusOK, budget.Compute(it, sess.Preferences().Travelers))
}

// GetMap godoc
// @Summary      Get map layers
// @Description  Markers, colors, polyline styles and route links per day. day=0 or absent shows every day.
// @Tags         Planner
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        day query int false "Day number filter"
// @Param        mode query string false "driving, walking or transit"
// @Success      200 {object} maps.View
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID}/map [get]
func (h *HandlerImpl) GetMap(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetMap", "/{sessionID}/map")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetMap"))

	_, it, ok := h.itinerary(w, r, span, l)
	if !ok {
		return
	}

	mode, err := maps.ParseTravelMode(r.URL.Query().Get("mode"))
	if err != nil {
		h.writeError(w, r, span, l, err)
		return
	}
	day := 0
	if raw := r.URL.Query().Get("day"); raw != "" {
		day, err = strconv.Atoi(raw)
		if err != nil {
			span.SetStatus(codes.Error, "Invalid day")
			api.ErrorResponse(w, r, http.StatusBadRequest, "day must be an integer")
			return
		}
	}

	view, err := maps.BuildView(it, day, mode)
	if err != nil {
		h.writeError(w, r, span, l, err)
		return
	}
	span.SetStatus(codes.Ok, "Map returned")
	api.WriteJSONResponse(w, r, http.StatusOK, view)
}

func (h *HandlerImpl) dayRoute(w http.ResponseWriter, r *http.Request, span trace.Span, l *slog.Logger) (RouteResponse, bool) {
	_, it, ok := h.itinerary(w, r, span, l)
	if !ok {
		return RouteResponse{}, false
	}
	dayNumber, err := strconv.Atoi(chi.URLParam(r, "dayNumber"))
	if err != nil {
		span.SetStatus(codes.Error, "Invalid day number")
		api.ErrorResponse(w, r, http.StatusBadRequest, "dayNumber must be an integer")
		return RouteResponse{}, false
	}
	mode, err := maps.ParseTravelMode(r.URL.Query().Get("mode"))
	if err != nil {
		h.writeError(w, r, span, l, err)
		return RouteResponse{}, false
	}
	day, err := it.Day(dayNumber)
	if err != nil {
		h.writeError(w, r, span, l, err)
		return RouteResponse{}, false
	}
	link, err := maps.RouteLink(*day, it.Destination, mode)
	if err != nil {
		h.writeError(w, r, span, l, err)
		return RouteResponse{}, false
	}
	return RouteResponse{DayNumber: dayNumber, Mode: mode, URL: link}, true
}

// GetDayRoute godoc
// @Summary      Get a day's route link
// @Tags         Planner
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        dayNumber path int true "Day number"
// @Param        mode query string false "driving, walking or transit"
// @Success      200 {object} planner.RouteResponse
// @Failure      404 {object} api.Response "Unknown day or day without activities"
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID}/days/{dayNumber}/route [get]
func (h *HandlerImpl) GetDayRoute(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetDayRoute", "/{sessionID}/days/{dayNumber}/route")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetDayRoute"))

	route, ok := h.dayRoute(w, r, span, l)
	if !ok {
		return
	}
	span.SetStatus(codes.Ok, "Route returned")
	api.WriteJSONResponse(w, r, http.StatusOK, route)
}

// GetDayRouteQR godoc
// @Summary      Get a day's route link as a QR code
// @Tags         Planner
// @Produce      png
// @Param        sessionID path string true "Session ID"
// @Param        dayNumber path int true "Day number"
// @Param        mode query string false "driving, walking or transit"
// @Success      200 {file} binary
// @Failure      404 {object} api.Response
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID}/days/{dayNumber}/route.png [get]
func (h *HandlerImpl) GetDayRouteQR(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetDayRouteQR", "/{sessionID}/days/{dayNumber}/route.png")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetDayRouteQR"))

	route, ok := h.dayRoute(w, r, span, l)
	if !ok {
		return
	}
	png, err := maps.RouteQRCode(route.URL, maps.DefaultQRSize)
	if err != nil {
		h.writeError(w, r, span, l, err)
		return
	}
	span.SetStatus(codes.Ok, "QR code returned")
	api.WriteAttachment(w, r, "image/png", "", png)
}

// GetReportPDF godoc
// @Summary      Download the itinerary as PDF
// @Tags         Planner
// @Produce      application/pdf
// @Param        sessionID path string true "Session ID"
// @Success      200 {file} binary
// @Failure      409 {object} api.Response "No itinerary yet"
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID}/report.pdf [get]
func (h *HandlerImpl) GetReportPDF(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetReportPDF", "/{sessionID}/report.pdf")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetReportPDF"))

	sess, it, ok := h.itinerary(w, r, span, l)
	if !ok {
		return
	}
	doc, err := export.ReportPDF(it, sess.Preferences().Travelers)
	if err != nil {
		h.writeError(w, r, span, l, err)
		return
	}
	span.SetStatus(codes.Ok, "PDF returned")
	api.WriteAttachment(w, r, "application/pdf", "itinerary.pdf", doc)
}

// GetCalendar godoc
// @Summary      Download the itinerary as iCalendar
// @Description  One event per activity. Day 1 falls on start (default today) in the destination's timezone.
// @Tags         Planner
// @Produce      text/calendar
// @Param        sessionID path string true "Session ID"
// @Param        start query string false "First day, YYYY-MM-DD"
// @Success      200 {file} binary
// @Failure      400 {object} api.Response
// @Failure      409 {object} api.Response "No itinerary yet"
// @Security     BearerAuth
// @Router       /planner/sessions/{sessionID}/calendar.ics [get]
func (h *HandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetCalendar", "/{sessionID}/calendar.ics")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetCalendar"))

	_, it, ok := h.itinerary(w, r, span, l)
	if !ok {
		return
	}

	loc := time.UTC
	if resolver, err := h.timezone(); err != nil {
		l.WarnContext(r.Context(), "Timezone lookup unavailable, using UTC", slog.Any("error", err))
	} else {
		loc = export.DestinationLocation(it, resolver)
	}

	start := time.Now().In(loc)
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, loc)
		if err != nil {
			span.SetStatus(codes.Error, "Invalid start date")
			api.ErrorResponse(w, r, http.StatusBadRequest, "start must be a date in YYYY-MM-DD format")
			return
		}
		start = parsed
	}

	cal, err := export.Calendar(it, start, loc)
	if err != nil {
		h.writeError(w, r, span, l, err)
		return
	}
	span.SetAttributes(attribute.String("calendar.timezone", loc.String()))
	span.SetStatus(codes.Ok, "Calendar returned")
	api.WriteAttachment(w, r, "text/calendar; charset=utf-8", "itinerary.ics", []byte(cal))
}

func submittable(s Snapshot) bool {
	return s.View == ViewWizard && s.CanSubmit
}
