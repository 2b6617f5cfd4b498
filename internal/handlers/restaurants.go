package handlers

import (
	"net/http"

	"dinewise/internal/hours"
	"dinewise/internal/response"
	"dinewise/internal/restaurants"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Name         string       `json:"name" binding:"required" example:"Trattoria"`
	UserID       string       `json:"userid" binding:"required" example:"trattoria"`
	Password     string       `json:"password" binding:"required" example:"secret"`
	Location     string       `json:"location" example:"123 Main St"`
	Cuisine      string       `json:"cuisine" example:"Italian"`
	Phone        string       `json:"phone" example:"555-0100"`
	Website      string       `json:"website" example:"https://trattoria.example"`
	Description  string       `json:"description"`
	OpeningHours []hours.Rule `json:"opening_hours"`
}

type LoginRequest struct {
	UserID   string `json:"userid" binding:"required" example:"trattoria"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// UpdateRestaurantRequest changes only the fields present in the body
type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Cuisine     *string `json:"cuisine"`
	UserID      *string `json:"userid"`
	Password    *string `json:"password"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
}

type OpeningHoursRequest struct {
	OpeningHours []hours.Rule `json:"opening_hours" binding:"required"`
}

// ListRestaurants godoc
// @Summary		List restaurants
// @Tags			restaurants
// @Produce		json
// @Success		200	{object}	response.RestaurantsResponse
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/restaurants [get]
func (h *Handler) ListRestaurants(c *gin.Context) {
	list, err := h.restaurants.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RestaurantsResponse{Restaurants: list})
}

// GetRestaurant godoc
// @Summary		Restaurant profile
// @Tags			restaurants
// @Produce		json
// @Param			id	path		int	true	"Restaurant ID"
// @Success		200	{object}	models.Restaurant
// @Failure		400	{object}	response.ErrorResponse	"Invalid id (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Unknown restaurant (RESTAURANT_NOT_FOUND)"
// @Router			/restaurants/{id} [get]
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	restaurant, err := h.restaurants.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Signup godoc
// @Summary		Restaurant signup
// @Description	Registers a restaurant and, optionally, its weekly opening hours in one step
// @Tags			restaurants
// @Accept			json
// @Produce		json
// @Param			restaurant	body		SignupRequest	true	"Restaurant data"
// @Success		201			{object}	response.RestaurantIDResponse
// @Failure		400			{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR)"
// @Failure		409			{object}	response.ErrorResponse	"Userid taken (DUPLICATE_USER_ID)"
// @Failure		500			{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/restaurants/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	restaurant, err := h.restaurants.Signup(c.Request.Context(), restaurants.SignupRequest{
		Name:         req.Name,
		UserID:       req.UserID,
		Password:     req.Password,
		Location:     req.Location,
		Cuisine:      req.Cuisine,
		Phone:        req.Phone,
		Website:      req.Website,
		Description:  req.Description,
		OpeningHours: req.OpeningHours,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.RestaurantIDResponse{RestaurantID: restaurant.ID})
}

// Login godoc
// @Summary		Restaurant login
// @Tags			restaurants
// @Accept			json
// @Produce		json
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Success		200			{object}	response.RestaurantIDResponse
// @Failure		400			{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR)"
// @Failure		401			{object}	response.ErrorResponse	"Wrong userid or password (INVALID_CREDENTIALS)"
// @Router			/restaurants/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	restaurant, err := h.restaurants.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RestaurantIDResponse{RestaurantID: restaurant.ID})
}

// UpdateRestaurant godoc
// @Summary		Update restaurant profile
// @Tags			restaurants
// @Accept			json
// @Produce		json
// @Param			id			path		int						true	"Restaurant ID"
// @Param			restaurant	body		UpdateRestaurantRequest	true	"Fields to change"
// @Success		200			{object}	models.Restaurant
// @Failure		400			{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR)"
// @Failure		404			{object}	response.ErrorResponse	"Unknown restaurant (RESTAURANT_NOT_FOUND)"
// @Failure		409			{object}	response.ErrorResponse	"Userid taken (DUPLICATE_USER_ID)"
// @Router			/restaurants/{id} [put]
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	restaurant, err := h.restaurants.Update(c.Request.Context(), id, restaurants.UpdateRequest{
		Name:        req.Name,
		Location:    req.Location,
		Cuisine:     req.Cuisine,
		UserID:      req.UserID,
		Password:    req.Password,
		Phone:       req.Phone,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetOpeningHours godoc
// @Summary		Weekly opening hours
// @Description	Days without a rule are not bookable. A rule with open_time equal to close_time means closed all day.
// @Tags			restaurants
// @Produce		json
// @Param			id	path		int	true	"Restaurant ID"
// @Success		200	{object}	response.OpeningHoursResponse
// @Failure		404	{object}	response.ErrorResponse	"Unknown restaurant (RESTAURANT_NOT_FOUND)"
// @Router			/restaurants/{id}/opening-hours [get]
func (h *Handler) GetOpeningHours(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	week, err := h.hours.Week(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OpeningHoursResponse{OpeningHours: week})
}

// SetOpeningHours godoc
// @Summary		Replace weekly opening hours
// @Description	Replaces every rule of the restaurant. On failure the previous schedule is kept.
// @Tags			restaurants
// @Accept			json
// @Produce		json
// @Param			id		path		int					true	"Restaurant ID"
// @Param			hours	body		OpeningHoursRequest	true	"Up to one rule per day, day_of_week 0 is Sunday"
// @Success		200		{object}	response.OpeningHoursResponse
// @Failure		400		{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR)"
// @Failure		404		{object}	response.ErrorResponse	"Unknown restaurant (RESTAURANT_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/restaurants/{id}/opening-hours [put]
func (h *Handler) SetOpeningHours(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req OpeningHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	week, err := h.hours.SetWeek(c.Request.Context(), id, req.OpeningHours)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OpeningHoursResponse{OpeningHours: week})
}
