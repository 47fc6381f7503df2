package main

import "cubelet/internal/game"

func main() {
	game.RunDesktop()
}
