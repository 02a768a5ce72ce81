package models

// Achievement is a named, independently evaluated badge over the transaction
// data, with a human-readable progress indicator such as "3/5" or "Unlocked".
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Progress    string `json:"progress"`
}
