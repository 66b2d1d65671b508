package echo

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/contact-book/internal/application/contact"
	"github.com/mohammadpnp/contact-book/internal/domain/failure"
)

type ContactHandler struct {
	create app.Create
	get    app.Get
	update app.Update
	delete app.Delete
	search app.Search
}

func NewContactHandler(create app.Create, get app.Get, update app.Update, del app.Delete, search app.Search) *ContactHandler {
	return &ContactHandler{
		create: create,
		get:    get,
		update: update,
		delete: del,
		search: search,
	}
}

// pathID parses a numeric path segment. A malformed id is a validation
// failure at the boundary, distinct from a well-formed id that matches
// nothing.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, failure.Detailed(failure.Validation, "Validation Error", name+" must be a number")
	}
	return id, nil
}

type contactRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func (h *ContactHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "invalid request body"))
	}

	out, err := h.create.Execute(c.Request().Context(), currentUser(c), app.CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusCreated, "Success create contact", out)
}

func (h *ContactHandler) Get(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return writeFailure(c, err)
	}

	out, err := h.get.Execute(c.Request().Context(), currentUser(c), contactID)
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Success get contact", out)
}

func (h *ContactHandler) Update(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return writeFailure(c, err)
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "invalid request body"))
	}

	out, err := h.update.Execute(c.Request().Context(), currentUser(c), app.UpdateInput{
		ID:        contactID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Success update contact", out)
}

func (h *ContactHandler) Delete(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return writeFailure(c, err)
	}

	out, err := h.delete.Execute(c.Request().Context(), currentUser(c), contactID)
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Success delete contact", out)
}

func (h *ContactHandler) Search(c echo.Context) error {
	in := app.SearchInput{Page: 1, Size: 10}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "page must be a number"))
		}
		in.Page = page
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "size must be a number"))
		}
		in.Size = size
	}

	if raw := c.QueryParam("name"); raw != "" {
		in.Name = &raw
	}
	if raw := c.QueryParam("email"); raw != "" {
		in.Email = &raw
	}
	if raw := c.QueryParam("phone"); raw != "" {
		in.Phone = &raw
	}

	out, err := h.search.Execute(c.Request().Context(), currentUser(c), in)
	if err != nil {
		return writeFailure(c, err)
	}

	return c.JSON(http.StatusOK, webResponse{
		StatusCode: http.StatusOK,
		Message:    "Success search contact",
		Data:       out.Contacts,
		Paging: &paging{
			CurrentPage: out.CurrentPage,
			TotalPage:   out.TotalPage,
			Size:        out.Size,
		},
	})
}
