package pipeline

import (
	"testing"

	"github.com/vta-lang/vta/internal/codegen"
)

// FuzzTranslate feeds arbitrary byte strings through the full translation
// pipeline and checks only that it never panics: malformed or semantically
// invalid source must fail with a returned error, never crash the
// translator. The returned error itself is not inspected.
func FuzzTranslate(f *testing.F) {
	f.Add("x = add(2, 3)\nnull = print(x)")
	f.Add("f = num(x: num) -> add(x, 1)\nnull = print(f(41))")
	f.Add("f = num(x: num) -> f(add(x, 1))\nf(900) = 0\nnull = print(f(1))")
	f.Add("null = print(if(lt(3, 5), 1, 2))")
	f.Add("")
	f.Add("=")
	f.Add("x = y = z")

	f.Fuzz(func(t *testing.T, source string) {
		_, _ = Translate(codegen.New(), source, "")
	})
}
