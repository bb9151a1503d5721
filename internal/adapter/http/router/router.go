// Package router assembles the HTTP mux from the controllers.
package router

import "net/http"

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func New(accountController AccountRouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if accountController != nil {
		accountController.RegisterRoutes(mux)
	}

	return mux
}
