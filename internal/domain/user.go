package domain

import "time"

// User is an operator allowed to open the ledger. PIN hashes are opaque
// one-way digests; the store never exposes them.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	PinHash string `json:"pinHash"`
}

// Session records who is logged in and since when.
type Session struct {
	UserID     string    `json:"userId"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// SeededUsers returns the built-in operator accounts. There is no user
// management surface; the operator set is fixed at build time.
func SeededUsers() []User {
	return []User{
		{
			ID:      "Mr. Baji Baba",
			Name:    "Operator 1",
			PinHash: "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4",
		},
		{
			ID:      "Mr. Laxman Reddy",
			Name:    "Operator 2",
			PinHash: "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4",
		},
		{
			ID:      "Mr. Venkat Reddy",
			Name:    "Operator 3",
			PinHash: "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4",
		},
	}
}
