// scripts/chat-repl/main.go
//
// Small terminal client for talking to a locally running assistant.
//
// Usage:
//   go run scripts/chat-repl/main.go [base-url] [user-id]
//
// Defaults to http://localhost:8080 and user "dev". Keeps one session for
// the whole run so turn counts accumulate server-side.

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

type processRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type processResponse struct {
	Data struct {
		Response    string `json:"response"`
		SessionID   string `json:"session_id"`
		Language    string `json:"language"`
		ActionTaken string `json:"action_taken"`
	} `json:"data"`
	Message string `json:"message"`
}

func main() {
	baseURL := "http://localhost:8080"
	userID := "dev"
	if len(os.Args) > 1 {
		baseURL = strings.TrimRight(os.Args[1], "/")
	}
	if len(os.Args) > 2 {
		userID = os.Args[2]
	}

	fmt.Printf("Connected to %s as %s. Type a message, or 'exit' to quit.\n", baseURL, userID)

	var sessionID string
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		body, err := json.Marshal(processRequest{Message: line, SessionID: sessionID})
		if err != nil {
			log.Fatalf("Failed to marshal request: %v", err)
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/chat/process", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("Failed to build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Fatalf("Request failed: %v", err)
		}

		var out processResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			resp.Body.Close()
			log.Fatalf("Failed to decode response: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			fmt.Printf("[%d] %s\n", resp.StatusCode, out.Message)
			continue
		}

		sessionID = out.Data.SessionID
		fmt.Printf("[%s/%s] %s\n", out.Data.Language, out.Data.ActionTaken, out.Data.Response)
	}
}
