package main

import (
	"fmt"

	"github.com/dayward/organizer/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		fmt.Println(err.Error())
		return
	}
}
