// Numword spells signed 64-bit integers as English cardinal text.
//
// Usage:
//
//	numword 43110             # forty-three thousand one hundred and ten
//	numword -110              # minus one hundred and ten
//	numword parse twenty-one  # 21
//	numword version
//
// A missing or unparseable argument prints a one-line diagnostic and exits
// with status 1; success prints the result and exits with status 0.
package main
