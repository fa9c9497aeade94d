package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for seeding test accounts:
//
//	go run scripts/genhash.go <password> [password...]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\n", pass, string(hash))
	}
}
