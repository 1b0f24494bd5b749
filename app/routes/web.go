// Package routes registers every route of the application against the named
// router.
package routes

import (
	"github.com/vitrinehq/vitrine/app/controllers"
	"github.com/vitrinehq/vitrine/config"
	"github.com/vitrinehq/vitrine/pkg/ctx"
	"github.com/vitrinehq/vitrine/pkg/middleware"
	"github.com/vitrinehq/vitrine/pkg/router"
)

// Register mounts the product resource routes and the auth endpoint.
func Register(r *router.Router) {
	auth := controllers.NewAuthController()
	products := controllers.NewProductController()

	api := r.Group("/api")
	api.Post("/login", "auth.login", ctx.Wrap(auth.Login))

	var guards []router.Middleware
	if config.AuthRequired() {
		guards = append(guards, middleware.Auth)
	}

	p := r.Group("/products", guards...)
	p.Get("", "products.index", ctx.Wrap(products.Index))
	p.Get("/create", "products.create", ctx.Wrap(products.Create))
	p.Post("", "products.store", ctx.Wrap(products.Store))
	p.Get("/{id}", "products.show", ctx.Wrap(products.Show))
	p.Get("/{id}/edit", "products.edit", ctx.Wrap(products.Edit))
	p.Put("/{id}", "products.update", ctx.Wrap(products.Update))
	p.Delete("/{id}", "products.destroy", ctx.Wrap(products.Destroy))
}
