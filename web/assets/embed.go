package assets

import "embed"

// Files holds the stylesheet and script served under /assets/.
//
//go:embed site.css site.js
var Files embed.FS
