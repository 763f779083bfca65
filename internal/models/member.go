package models

// Member is a participant in a shared space. Identity and permissions live
// with the auth collaborator; the engine only needs stable ids for
// attribution and leaderboards.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
