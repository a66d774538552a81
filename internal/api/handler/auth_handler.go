package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-service/internal/core/ports"
)

// maxProfileImageBytes caps profile image uploads.
const maxProfileImageBytes = 5 << 20

// AuthHandler handles account and authentication requests.
type AuthHandler struct {
	userService ports.UserService
}

func NewAuthHandler(userService ports.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// SignUp creates a new account with the Standard role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		UserName: req.UserName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: toUserResponse(user)})
}

// CheckEmail reports whether an email address is already registered.
//
// @Summary      Check email availability
// @Tags         auth
// @Produce      json
// @Param        email  query     string  true  "Email to check"
// @Success      200    {object}  emailCheckResponse
// @Failure      400    {object}  errorResponse
// @Router       /api/auth/check [get]
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	taken, err := h.userService.IsEmailTaken(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, emailCheckResponse{Email: email, Taken: taken})
}

// SignIn authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

// SignInExternal consumes a verified external identity and access token
// produced by an upstream OAuth code exchange, and returns a signed token.
//
// @Summary      Login with an external identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      externalSignInRequest  true  "Verified external identity"
// @Success      200   {object}  authResponse
// @Router       /api/auth/external [post]
func (h *AuthHandler) SignInExternal(c echo.Context) error {
	var req externalSignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.userService.LoginExternal(c.Request().Context(), ports.ExternalIdentityInput{
		Email:       req.Email,
		UserName:    req.UserName,
		AccessToken: req.AccessToken,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

// Promote upgrades the caller from Standard to Elevated and returns a fresh
// token carrying the new role. Previously issued tokens keep the old role
// until they expire.
//
// @Summary      Promote the caller to Elevated
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/auth/promote [put]
func (h *AuthHandler) Promote(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	result, err := h.userService.Promote(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

// UploadProfileImage stores the caller's profile picture.
//
// @Summary      Upload a profile image
// @Tags         auth
// @Accept       mpfd
// @Success      204
// @Failure      400  {object}  errorResponse
// @Router       /api/auth/profile-image [put]
func (h *AuthHandler) UploadProfileImage(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("profile_image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "profile_image file is required")
	}
	if fh.Size > maxProfileImageBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "profile image too large")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxProfileImageBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}

	contentType := http.DetectContentType(data)
	switch contentType {
	case "image/jpeg", "image/png", "image/gif":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "uploaded file is not an image")
	}

	if err := h.userService.StoreProfileImage(c.Request().Context(), principal.UserID, data, contentType); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// LoadProfileImage serves the caller's profile picture bytes.
//
// @Summary      Load the caller's profile image
// @Tags         auth
// @Produce      png
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /api/auth/load-profile [get]
func (h *AuthHandler) LoadProfileImage(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	data, contentType, err := h.userService.LoadProfileImage(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, contentType, data)
}
