package folio

import "embed"

// EmbeddedAssets contains the browser assets served under /public/:
// site.js drives reveals, the navbar and the contact form; site.css holds
// the reveal transitions and the theme.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
