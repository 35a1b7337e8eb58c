package entity

// Recipient identifies a chat thread a venue can be shared into.
type Recipient struct {
	ID      string `json:"id"`      // Stable identifier of the chat thread.
	Name    string `json:"name"`    // Display name of the person or group.
	IsGroup bool   `json:"isGroup"` // Whether the recipient is a group chat.
}
