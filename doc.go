// Package cidemo contains two small, unrelated sample packages used to
// smoke-test build and CI tooling.
//
// Package [deedles.dev/cidemo/geom] computes rectangle areas,
// perimeters, and hypotenuse lengths, clamping negative lengths to
// zero. Package [deedles.dev/cidemo/greeter] formats greetings. The
// geom functions are also exported with C linkage by the
// cmd/libgeometry command.
package cidemo
