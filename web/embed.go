// Package web holds the HTML templates and static assets served by the page handler.
package web

import "embed"

//go:embed components/*.gohtml pages/*.gohtml static/*
var FS embed.FS
