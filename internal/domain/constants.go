package domain

// Pick values
const (
	// PickDraw is the pick value for a drawn game
	PickDraw = "draw"

	// MaxPickLength bounds free-form prop answers
	MaxPickLength = 100
)

// InviteCodeLength is the number of characters in a league invite code
const InviteCodeLength = 8
