package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service address")
	maxID := flag.Int("max-id", 5, "ids are picked from 1..max-id")
	flag.Parse()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(*baseURL, *maxID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(baseURL string, maxID int) {
	page := "item"
	if rand.Intn(2) == 0 {
		page = "order"
	}

	// Иногда запрашиваем несуществующий id, чтобы видеть 404 в метриках
	id := rand.Intn(maxID) + 1
	if rand.Intn(5) == 0 {
		id = rand.Intn(1_000_000) + maxID
	}

	url := fmt.Sprintf("%s/%s/%d", baseURL, page, id)
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
