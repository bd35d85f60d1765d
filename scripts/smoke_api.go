package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Manual smoke test against a running server. Walks the whole surface:
// signup, pages, post create/update/delete, logout.
var client *http.Client

// Pretty print JSON helper
func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// Request helper; the cookie jar carries the session across calls.
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(name, method, url string, body interface{}) []byte {
	color.Yellow("\n%s", name)
	resp, raw, err := sendRequest(method, url, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(raw)
	return raw
}

func main() {
	color.Cyan("🚀 Starting BlogMosaic API smoke test\n")

	jar, _ := cookiejar.New(nil)
	client = &http.Client{Jar: jar}

	email := fmt.Sprintf("smoke+%d@example.com", os.Getpid())

	step("[AUTH] 1. Signup", "POST", "/auth/signup", map[string]string{
		"name":     "Smoke Tester",
		"email":    email,
		"password": "smoketest123",
	})

	step("[AUTH] 2. Current session", "GET", "/auth/me", nil)

	step("[PAGES] 3. Home page", "GET", "/pages/home", nil)
	step("[PAGES] 4. All posts", "GET", "/pages/posts", nil)
	step("[PAGES] 5. My posts", "GET", "/pages/my-posts", nil)

	raw := step("[POSTS] 6. Create post", "POST", "/posts", map[string]string{
		"title":   "Smoke Test Post",
		"content": "Written by the smoke test.",
		"status":  "active",
	})

	var created struct {
		Data struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &created); err != nil || created.Data.Slug == "" {
		color.Red("Could not read created post id, aborting")
		os.Exit(1)
	}

	step("[PAGES] 7. Post page", "GET", "/pages/posts/"+created.Data.Slug, nil)

	step("[POSTS] 8. Update post", "PUT", "/posts/"+created.Data.ID, map[string]string{
		"title":   "Smoke Test Post (edited)",
		"content": "Edited by the smoke test.",
		"status":  "inactive",
	})

	step("[POSTS] 9. Delete post", "DELETE", "/posts/"+created.Data.ID, nil)

	step("[AUTH] 10. Logout", "POST", "/auth/logout", nil)
	step("[AUTH] 11. Session after logout", "GET", "/auth/me", nil)

	color.Cyan("\n✅ Smoke test finished")
}
