// Package pascal generates rows of Pascal's triangle.
//
// # Overview
//
// Row i of the triangle lists the binomial coefficients C(i, 0) through
// C(i, i). Rows are built from the row above using Pascal's recurrence:
//
//	C(i, k) = C(i-1, k-1) + C(i-1, k)
//
// # Usage
//
//	tri, err := pascal.Generate(5)
//	if err != nil {
//	    return err
//	}
//	for _, row := range tri.Rows() {
//	    fmt.Println(row) // [1] [1 1] [1 2 1] ...
//	}
//
// # Precision
//
// Generate uses uint64 cells and refuses row counts above MaxRows, the last
// count whose coefficients all fit. GenerateExact uses math/big and has no
// such ceiling. Binomial and GenerateFactorial compute each cell directly from
// factorials; they exist mainly as an independent cross-check.
//
// The generator returns data only. Formatting lives in package render.
package pascal
