//go:build cgo

// Command libgeometry exposes the geom package to C and C++ callers.
// Build it with
//
//	go build -buildmode=c-shared -o libgeometry.so ./cmd/libgeometry
//
// or -buildmode=c-archive for a static library. The generated header
// declares each function as taking and returning GoFloat64, which is
// a typedef for double, so the signatures match
//
//	double geometry_rectangle_area(double width, double height);
package main

import "C"

import "deedles.dev/cidemo/geom"

//export geometry_rectangle_area
func geometry_rectangle_area(width, height float64) float64 {
	return geom.RectangleArea(width, height)
}

//export geometry_rectangle_perimeter
func geometry_rectangle_perimeter(width, height float64) float64 {
	return geom.RectanglePerimeter(width, height)
}

//export geometry_hypotenuse
func geometry_hypotenuse(legA, legB float64) float64 {
	return geom.Hypotenuse(legA, legB)
}

func main() {}
