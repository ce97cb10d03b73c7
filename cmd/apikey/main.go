package main

import (
	"flag"
	"fmt"

	"github.com/contractorpro/contractorpro/internal/auth"
)

// Prints a new API key and the config entry that activates it. Only the hash
// is stored server side, so the key is shown once.
func main() {
	userID := flag.String("user", "", "user id the key authenticates as")
	name := flag.String("name", "default", "label for the key")
	flag.Parse()

	key := auth.GenerateAPIKey()

	fmt.Println("API key:", key)
	fmt.Println()
	fmt.Println("auth:")
	fmt.Println("  api_key:")
	fmt.Println("    keys:")
	fmt.Printf("      %s:\n", auth.HashAPIKey(key))
	fmt.Printf("        user_id: %q\n", *userID)
	fmt.Printf("        name: %q\n", *name)
	fmt.Println("        is_active: true")
}
