package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/contact-book/internal/application/user"
	"github.com/mohammadpnp/contact-book/internal/domain/failure"
)

type UserHandler struct {
	register app.Register
	login    app.Login
	current  app.Current
	update   app.UpdateCurrent
	logout   app.Logout
}

func NewUserHandler(register app.Register, login app.Login, current app.Current, update app.UpdateCurrent, logout app.Logout) *UserHandler {
	return &UserHandler{
		register: register,
		login:    login,
		current:  current,
		update:   update,
		logout:   logout,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "invalid request body"))
	}

	out, err := h.register.Execute(c.Request().Context(), app.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Register Success", out)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "invalid request body"))
	}

	out, err := h.login.Execute(c.Request().Context(), app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Login Success", out)
}

func (h *UserHandler) Current(c echo.Context) error {
	out, err := h.current.Execute(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Get current user success", out)
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (h *UserHandler) UpdateCurrent(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "invalid request body"))
	}

	out, err := h.update.Execute(c.Request().Context(), currentUser(c), app.UpdateCurrentInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Update current user success", out)
}

func (h *UserHandler) Logout(c echo.Context) error {
	out, err := h.logout.Execute(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Logout success", out)
}
