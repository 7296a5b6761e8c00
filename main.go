package main

import "github.com/diogochaves123/app-ecogrow/cmd/ecogrow"

func main() {
	ecogrow.Execute()
}
