package main

import "github.com/Madhav-Gupta-28/seafood-backend-go/cmd"

func main() {
	cmd.Execute()
}
