// hashpw generates the bcrypt hash expected in ADMIN_PASSWORD_HASH.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kiwistay/hotel-booking-backend/internal/auth"
)

func main() {
	cost := flag.Int("cost", 12, "bcrypt cost")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: hashpw [-cost N] <password>")
	}

	hash, err := auth.HashPassword(flag.Arg(0), *cost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	fmt.Println(hash)
}
