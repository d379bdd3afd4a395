// markdemo writes a small marked sample resume PDF, handy for trying
// out regionscan without a real rendered document.
//
// Usage:
//
//	markdemo -out sample.pdf
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mwhitfield/regionmark/internal/testpdf"
)

func main() {
	out := flag.String("out", "sample.pdf", "Output PDF path")
	flag.Parse()

	ids, err := testpdf.WriteSample(*out)
	if err != nil {
		fmt.Printf("Failed to write sample: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s with marked regions %s\n", *out, strings.Join(ids, ", "))
}
