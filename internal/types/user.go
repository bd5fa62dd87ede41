package types

// User is defined alongside the other entities but is not referenced by any
// core operation yet.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
