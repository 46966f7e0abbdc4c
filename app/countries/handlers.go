package countries

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/countryview/app/api"
	"github.com/joefazee/countryview/internal/logger"
	"github.com/joefazee/countryview/internal/validator"
	"github.com/joefazee/countryview/models"
)

// Handler handles HTTP requests for the country view
type Handler struct {
	service Service
	logger  logger.Logger
}

// NewHandler creates a new country view handler
func NewHandler(service Service, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Handler{
		service: service,
		logger:  log,
	}
}

// GetView godoc
// @Summary Current view state
// @Description Lifecycle, error, country aggregates, selection and the selected country's users
// @Tags view
// @Produce json
// @Success 200 {object} api.Response{data=ViewResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/view [get]
func (h *Handler) GetView(c *gin.Context) {
	view, err := h.service.View(c.Request.Context())
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "GetView"})
		api.InternalErrorResponse(c, "Failed to build view")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "View retrieved successfully", view)
}

// GetCountries godoc
// @Summary List countries
// @Description Countries of the current batch matching the gender filter, largest first
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]CountryResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) GetCountries(c *gin.Context) {
	countries, err := h.service.Countries(c.Request.Context())
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "GetCountries"})
		api.InternalErrorResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// GetCountryUsers godoc
// @Summary List a country's users
// @Description Users of one country, most recently registered first
// @Tags countries
// @Produce json
// @Param country path string true "Country name"
// @Param gender query string false "All, male or female; defaults to the current filter"
// @Success 200 {object} api.Response{data=[]UserResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{country}/users [get]
func (h *Handler) GetCountryUsers(c *gin.Context) {
	country := c.Param("country")

	v := validator.New()
	validator.CountryName(v, "country", country)

	var filter *models.GenderFilter
	if raw, ok := c.GetQuery("gender"); ok {
		f, err := models.ParseGenderFilter(raw)
		v.Check(err == nil, "gender", "must be one of All, male, female")
		filter = &f
	}

	if !v.Valid() {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	users, err := h.service.CountryUsers(c.Request.Context(), country, filter)
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "GetCountryUsers", "country": country})
		api.InternalErrorResponse(c, "Failed to fetch users")
		return
	}

	api.ListResponse(c, "Users retrieved successfully", users, len(users))
}

// SetGender godoc
// @Summary Change the gender filter
// @Description Sets the filter and recomputes the country list. The selected country is kept.
// @Tags selection
// @Accept json
// @Produce json
// @Param request body SetGenderRequest true "Gender filter"
// @Success 200 {object} api.Response{data=SelectionResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/selection/gender [put]
func (h *Handler) SetGender(c *gin.Context) {
	var req SetGenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	selection, err := h.service.SetGender(c.Request.Context(), req.Filter())
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "SetGender"})
		api.InternalErrorResponse(c, "Failed to change gender filter")
		return
	}

	api.UpdatedResponse(c, "Gender filter updated", selection)
}

// ClickCountry godoc
// @Summary Toggle the selected country
// @Description Selects a country from the current list, or clears the selection when it is already selected
// @Tags selection
// @Accept json
// @Produce json
// @Param request body CountryClickRequest true "Country"
// @Success 200 {object} api.Response{data=SelectionResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/selection/country [post]
func (h *Handler) ClickCountry(c *gin.Context) {
	var req CountryClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	req.Country = strings.TrimSpace(req.Country)
	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	selection, err := h.service.ToggleCountry(c.Request.Context(), req.Country)
	if errors.Is(err, models.ErrUnknownCountry) {
		api.NotFoundResponse(c, "Country")
		return
	}
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "ClickCountry"})
		api.InternalErrorResponse(c, "Failed to change selection")
		return
	}

	api.UpdatedResponse(c, "Selection updated", selection)
}

// GetSelectedUsers godoc
// @Summary List the selected country's users
// @Description Empty when no country is selected
// @Tags selection
// @Produce json
// @Success 200 {object} api.Response{data=[]UserResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/selection/users [get]
func (h *Handler) GetSelectedUsers(c *gin.Context) {
	users, err := h.service.SelectedUsers(c.Request.Context())
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "GetSelectedUsers"})
		api.InternalErrorResponse(c, "Failed to fetch users")
		return
	}

	api.ListResponse(c, "Users retrieved successfully", users, len(users))
}
