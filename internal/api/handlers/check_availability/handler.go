package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/domain"
	checkAvailability "github.com/labims/LIMS-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidResourceType = "некорректный параметр resourceType, ожидается EQUIPMENT или WORKSPACE"
	msgInvalidResourceID   = "некорректный параметр resourceId"
	msgInvalidWindow       = "некорректные параметры окна, ожидается RFC3339 (windowStart, windowEnd)"
	msgInvalidInput        = "некорректные параметры запроса"
	msgResourceNotFound    = "ресурс не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query параметры: resourceType, resourceId, windowStart, windowEnd (все обязательны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkAvailability.ErrResourceNotFound):
			h.logger.Warn("GET /availability - Resource not found: %s %d", req.ResourceType, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("GET /availability - Failed to check availability: %s %d, error=%v",
				req.ResourceType, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func parseQuery(r *http.Request) (*checkAvailability.Request, error) {
	query := r.URL.Query()

	resourceType := domain.ResourceType(query.Get("resourceType"))
	if !resourceType.IsValid() {
		return nil, errors.New(msgInvalidResourceType)
	}

	resourceID, err := strconv.ParseInt(query.Get("resourceId"), 10, 64)
	if err != nil || resourceID <= 0 {
		return nil, errors.New(msgInvalidResourceID)
	}

	windowStart, err := time.Parse(time.RFC3339, query.Get("windowStart"))
	if err != nil {
		return nil, errors.New(msgInvalidWindow)
	}

	windowEnd, err := time.Parse(time.RFC3339, query.Get("windowEnd"))
	if err != nil {
		return nil, errors.New(msgInvalidWindow)
	}

	return &checkAvailability.Request{
		ResourceType: resourceType,
		ResourceID:   resourceID,
		WindowStart:  windowStart,
		WindowEnd:    windowEnd,
	}, nil
}
