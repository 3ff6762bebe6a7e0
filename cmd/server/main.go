package main

import (
	"github.com/convokit/chatbot-api/cmd"
)

func main() {
	cmd.Execute()
}
