package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
)

// Mints API keys in the same format the register endpoint uses, for seeding
// a database row by hand or exercising the gateway locally.
func main() {
	count := flag.Int("n", 1, "Number of keys to generate")
	flag.Parse()

	for i := 0; i < *count; i++ {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatalf("Error generating key material: %v", err)
		}
		fmt.Printf("bdr_%s\n", hex.EncodeToString(buf))
	}
}
