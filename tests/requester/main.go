package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Нагрузка на сервис оформления: логинится в заглушке бекенда и
// дергает /checkout и /orders/{id} с Bearer токеном.

const (
	baseURL  = "http://localhost:8080"
	loginURL = "http://localhost:8081/login?username="
	users    = 5
)

func main() {
	tokens := make([]string, 0, users)
	for i := range users {
		token, err := login("user" + strconv.Itoa(i))
		if err != nil {
			fmt.Println("Ошибка логина:", err)
			return
		}
		tokens = append(tokens, token)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			token := tokens[rand.Intn(len(tokens))]
			wg.Go(func() { doRequest(token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func login(username string) (string, error) {
	resp, err := http.Post(loginURL+username, "application/json", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Token, nil
}

func doRequest(token string) {
	var req *http.Request
	if rand.Intn(3) == 0 {
		body, _ := json.Marshal(map[string]any{})
		req, _ = http.NewRequest(http.MethodPost, baseURL+"/checkout", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		id := rand.Intn(20) + 1
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/orders/"+strconv.Itoa(id), nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println(req.Method, req.URL, "->", resp.Status)
	resp.Body.Close()
}
