// Package web embeds the HTML templates and static assets served by the
// application.
package web

import "embed"

//go:embed views/*.html
var Views embed.FS

//go:embed static/*
var Static embed.FS
