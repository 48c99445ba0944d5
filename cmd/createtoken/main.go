package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fasol.store/staffapp/security"
	"fasol.store/staffapp/staff/model"
)

// Mints a manager session token for poking the API by hand.
func main() {
	secret := os.Getenv("FASOL_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("FASOL_SIGNING_SECRET not set")
	}

	emp := &model.Employee{
		ID:       1,
		FullName: "Анна Петрова",
		Role:     model.RoleManager,
	}

	token, err := security.CreateSessionToken(emp, secret, time.Hour)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
