package resource

import (
	"embed"
	"io/fs"
)

//go:embed questions/*.csv
var embedded embed.FS

// Embedded returns the question files bundled with the binary
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "questions")
	if err != nil {
		panic(err)
	}
	return sub
}
