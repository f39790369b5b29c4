package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirm prompts the user with a yes/no question and reads a line from
// stdin. Only "y" or "yes" (case-insensitive) counts as acceptance.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes"
}
