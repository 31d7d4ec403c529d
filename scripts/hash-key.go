//go:build ignore
// +build ignore

package main

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Client mirrors an entry of keys.json
type Client struct {
	Name         string `json:"name"`
	KeyHash      string `json:"key_hash"`
	RateLimitRPM int    `json:"rate_limit_rpm"`
	Enabled      bool   `json:"enabled"`
}

func main() {
	fmt.Println("API Key Generator for keys.json")
	fmt.Println("===============================")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("Client name (or 'quit' to exit): ")
		name, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			return
		}

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if strings.ToLower(name) == "quit" {
			break
		}

		key := newKey()
		hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
		if err != nil {
			fmt.Println("Error generating hash:", err)
			continue
		}

		entry, _ := json.MarshalIndent(Client{
			Name:         strings.ToLower(name),
			KeyHash:      string(hash),
			RateLimitRPM: 600,
			Enabled:      true,
		}, "    ", "  ")

		fmt.Println()
		fmt.Println("API key (give this to the client, it is not stored):")
		fmt.Println(key)
		fmt.Println()
		fmt.Println("Entry for the clients list in keys.json:")
		fmt.Println("    " + string(entry))
		fmt.Println()
	}

	fmt.Println("Goodbye!")
}

// newKey returns a random key prefixed for easy identification in logs.
func newKey() string {
	id, err := uuid.NewRandomFromReader(rand.Reader)
	if err != nil {
		id = uuid.New()
	}
	return "dtb_" + strings.ReplaceAll(id.String(), "-", "")
}
