package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/contact-book/internal/application/address"
	"github.com/mohammadpnp/contact-book/internal/domain/failure"
)

type AddressHandler struct {
	create app.Create
	get    app.Get
	update app.Update
	delete app.Delete
	list   app.List
}

func NewAddressHandler(create app.Create, get app.Get, update app.Update, del app.Delete, list app.List) *AddressHandler {
	return &AddressHandler{
		create: create,
		get:    get,
		update: update,
		delete: del,
		list:   list,
	}
}

type addressRequest struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

func (h *AddressHandler) Create(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return writeFailure(c, err)
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "invalid request body"))
	}

	out, err := h.create.Execute(c.Request().Context(), currentUser(c), app.CreateInput{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusCreated, "Success create address", out)
}

func (h *AddressHandler) Get(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return writeFailure(c, err)
	}
	addressID, err := pathID(c, "addressId")
	if err != nil {
		return writeFailure(c, err)
	}

	out, err := h.get.Execute(c.Request().Context(), currentUser(c), app.GetInput{
		ContactID: contactID,
		AddressID: addressID,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Success get address", out)
}

func (h *AddressHandler) Update(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return writeFailure(c, err)
	}
	addressID, err := pathID(c, "addressId")
	if err != nil {
		return writeFailure(c, err)
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return writeFailure(c, failure.Detailed(failure.Validation, "Validation Error", "invalid request body"))
	}

	out, err := h.update.Execute(c.Request().Context(), currentUser(c), app.UpdateInput{
		ID:         addressID,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Success update address", out)
}

func (h *AddressHandler) Delete(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return writeFailure(c, err)
	}
	addressID, err := pathID(c, "addressId")
	if err != nil {
		return writeFailure(c, err)
	}

	out, err := h.delete.Execute(c.Request().Context(), currentUser(c), app.DeleteInput{
		ContactID: contactID,
		AddressID: addressID,
	})
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Success delete address", out)
}

func (h *AddressHandler) List(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return writeFailure(c, err)
	}

	out, err := h.list.Execute(c.Request().Context(), currentUser(c), contactID)
	if err != nil {
		return writeFailure(c, err)
	}

	return writeData(c, http.StatusOK, "Success list addresses", out)
}
