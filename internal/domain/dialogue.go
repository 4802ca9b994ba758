package domain

import "time"

// Role of a dialogue message author.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// DialogueMessage is one line of wizard transcript. Hotels is populated
// only on agent messages that present options (at most 3, numbered 1..k).
type DialogueMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Hotels    []Hotel   `json:"hotels,omitempty"`
}

// WizardState enumerates the dialogue wizard's steps, in the order they
// are visited. Search is passed through synchronously during the email
// step's transition; it is exposed so callers can report it.
type WizardState string

const (
	StateCity         WizardState = "city"
	StateDates        WizardState = "dates"
	StateGuests       WizardState = "guests"
	StateEmail        WizardState = "email"
	StateSearch       WizardState = "search"
	StateSelection    WizardState = "selection"
	StateConfirmation WizardState = "confirmation"
	StateDone         WizardState = "done"
)
