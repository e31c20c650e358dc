package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
)

// Resolv tags for collision objects
const (
	ResolvPlayer = "player"
	ResolvBounds = "bounds"
)
