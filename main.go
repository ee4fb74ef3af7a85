package main

import "nippou/cmd"

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Die(err)
	}
}
