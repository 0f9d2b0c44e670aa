// validate-commit checks a commit message file against the repository's
// Angular-style commit convention. Intended as a commit-msg git hook.
package main

import (
	"fmt"
	"os"
	"strings"

	"ynabmcp/internal/commitmsg"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: validate-commit <commit-message-file>")
		os.Exit(1)
	}

	path := os.Args[1]
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading commit message file: %v\n", err)
		os.Exit(1)
	}
	message := strings.TrimSpace(string(b))
	if message == "" {
		fmt.Println("Error: Commit message is empty")
		os.Exit(1)
	}

	fmt.Printf("Validating commit message: '%s'\n", message)

	if err := commitmsg.Validate(message); err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Commit message format is invalid")
		fmt.Println("Expected format: 'type: Message starting with capital letter'")
		fmt.Println("Example: 'feat: Add new user authentication feature'")
		os.Exit(1)
	}

	fmt.Println("Commit message format is valid")
}
