package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, users TokenResolver, userHandler *UserHandler, contactHandler *ContactHandler, addressHandler *AddressHandler) {
	api := server.Group("/api/v1", ResolveIdentity(users))

	api.POST("/users", userHandler.Register)
	api.POST("/users/login", userHandler.Login)

	authed := api.Group("", RequireIdentity())
	authed.GET("/users/current", userHandler.Current)
	authed.PATCH("/users/current", userHandler.UpdateCurrent)
	authed.DELETE("/users/current", userHandler.Logout)

	authed.POST("/contacts", contactHandler.Create)
	authed.GET("/contacts", contactHandler.Search)
	authed.GET("/contacts/:contactId", contactHandler.Get)
	authed.PUT("/contacts/:contactId", contactHandler.Update)
	authed.DELETE("/contacts/:contactId", contactHandler.Delete)

	authed.POST("/contacts/:contactId/addresses", addressHandler.Create)
	authed.GET("/contacts/:contactId/addresses", addressHandler.List)
	authed.GET("/contacts/:contactId/addresses/:addressId", addressHandler.Get)
	authed.PUT("/contacts/:contactId/addresses/:addressId", addressHandler.Update)
	authed.DELETE("/contacts/:contactId/addresses/:addressId", addressHandler.Delete)
}
