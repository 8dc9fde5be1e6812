package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type OrderLine struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type Discount struct {
	PercentOff int `json:"percent_off"`
}

type Tax struct {
	TaxRate string `json:"tax_rate"`
}

type Order struct {
	Currency string      `json:"currency"`
	Items    []OrderLine `json:"items"`
	Discount *Discount   `json:"discount,omitempty"`
	Tax      *Tax        `json:"tax,omitempty"`
}

func generateRandomOrder(currency string, maxItemID int64) Order {
	order := Order{Currency: currency}
	for range rand.Intn(3) + 1 {
		order.Items = append(order.Items, OrderLine{
			ItemID:   rand.Int63n(maxItemID) + 1,
			Quantity: rand.Intn(5) + 1,
		})
	}
	if rand.Intn(2) == 0 {
		order.Discount = &Discount{PercentOff: (rand.Intn(5) + 1) * 5}
	}
	if rand.Intn(3) == 0 {
		order.Tax = &Tax{TaxRate: "20.00"}
	}
	return order
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "orders", "orders topic")
	currency := flag.String("currency", "usd", "currency of generated orders")
	maxItemID := flag.Int64("max-item-id", 1, "item ids are picked from 1..max-item-id")
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder(*currency, *maxItemID)
			data, _ := json.Marshal(order)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write order:", err)
				continue
			}
			log.Println("order generated", string(data))
		case <-ctx.Done():
			return
		}
	}
}
