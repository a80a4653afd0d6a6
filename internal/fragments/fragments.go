// Package fragments holds the three static C++ text fragments — header,
// stdlib, main-template — embedded into the binary at build time rather
// than read from disk per translation, so they version with the
// translator binary itself.
package fragments

import _ "embed"

//go:embed header.cpp.tmpl
var Header string

//go:embed stdlib.cpp.tmpl
var Stdlib string

//go:embed main.cpp.tmpl
var MainTemplate string
