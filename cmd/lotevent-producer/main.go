package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
)

const moduleRef = "batch-fixed-price.v1"

// generateLotHistory emits a plausible record sequence for one lot: created,
// a run of bids, then either cancellation or settlement with a proceeds
// claim. Good enough to exercise the history consumer end to end.
func generateLotHistory(lotID uint64, bidCount int) []eventv1.LotEvent {
	seller := bankv1.Address("seller-" + strconv.FormatUint(lotID, 10))
	capacity := decimal.New(int64(rand.Intn(100)+1), 18)

	var records []eventv1.LotEvent
	push := func(eventType eventv1.EventType, payload any) {
		record, err := eventv1.NewLotEvent(eventType, lotID, moduleRef, payload)
		if err != nil {
			log.Printf("Failed to build %s record for lot %d: %v", eventType, lotID, err)
			return
		}
		records = append(records, record)
	}

	push(eventv1.TypeLotCreated, eventv1.LotCreatedPayload{
		Seller:     seller,
		BaseAsset:  "TOKEN",
		QuoteAsset: "USDC",
		Capacity:   capacity,
		Prefunded:  true,
	})

	// Roughly one in ten lots is cancelled before any bid lands.
	if rand.Float64() < 0.1 {
		push(eventv1.TypeLotCancelled, eventv1.LotCancelledPayload{
			Seller: seller,
			Refund: capacity,
		})
		return records
	}

	totalIn := decimal.Zero
	var bidIDs []uint64
	for bidID := uint64(1); bidID <= uint64(bidCount); bidID++ {
		amount := decimal.New(int64(rand.Intn(5)+1), 18)
		totalIn = totalIn.Add(amount)
		bidIDs = append(bidIDs, bidID)

		push(eventv1.TypeBidPlaced, eventv1.BidPlacedPayload{
			BidID:  bidID,
			Bidder: bankv1.Address("bidder-" + strconv.FormatUint(lotID*100+bidID, 10)),
			Amount: amount,
		})
	}

	totalOut := capacity
	if totalIn.LessThan(capacity) {
		totalOut = totalIn
	}
	push(eventv1.TypeLotSettled, eventv1.LotSettledPayload{
		Finished: true,
		TotalIn:  totalIn,
		TotalOut: totalOut,
	})
	push(eventv1.TypeBidsClaimed, eventv1.BidsClaimedPayload{BidIDs: bidIDs})
	push(eventv1.TypeProceedsClaimed, eventv1.ProceedsClaimedPayload{
		Proceeds: totalIn,
		Refund:   capacity.Sub(totalOut),
	})

	return records
}

func main() {
	var (
		brokers = flag.String("brokers", "localhost:9092", "Kafka broker addresses (comma-separated)")
		topic   = flag.String("topic", "lot-events", "Kafka topic name")
		file    = flag.String("file", "", "JSON file with records (optional, generates records if not provided)")
		delay   = flag.Duration("delay", 100*time.Millisecond, "Delay between sending records")
		lots    = flag.Int("lots", 100, "Number of lot lifecycles to generate")
		bids    = flag.Int("bids", 5, "Maximum bids per generated lot")
	)
	flag.Parse()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(*brokers),
		Topic:        *topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	defer writer.Close()

	ctx := context.Background()

	var records []eventv1.LotEvent
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read file %s: %v", *file, err)
		}
		if err := json.Unmarshal(data, &records); err != nil {
			log.Fatalf("Failed to parse JSON from file: %v", err)
		}
		log.Printf("Loaded %d records from file: %s", len(records), *file)
	} else {
		log.Printf("Generating lifecycles for %d lots...", *lots)
		for lotID := uint64(1); lotID <= uint64(*lots); lotID++ {
			records = append(records, generateLotHistory(lotID, rand.Intn(*bids)+1)...)
		}
		log.Printf("Generated %d records", len(records))
	}

	log.Printf("Sending records to Kafka broker: %s, topic: %s", *brokers, *topic)
	log.Printf("Delay between records: %v", *delay)

	for i, record := range records {
		value, err := json.Marshal(record)
		if err != nil {
			log.Printf("Failed to marshal record %d: %v", i+1, err)
			continue
		}

		// Keyed by lot id so one lot's records stay ordered on one partition,
		// matching the daemon's publisher.
		msg := kafka.Message{
			Key:   []byte(strconv.FormatUint(record.LotID, 10)),
			Value: value,
			Time:  record.OccurredAt,
		}

		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("Failed to send record %d (%s): %v", i+1, record.ID, err)
			continue
		}

		if (i+1)%100 == 0 || i == len(records)-1 {
			log.Printf("Sent record %d/%d: %s | lot %d | %s",
				i+1, len(records), record.ID, record.LotID, record.Type)
		}

		if i < len(records)-1 {
			time.Sleep(*delay)
		}
	}

	log.Printf("Successfully sent all %d records!", len(records))

	counts := make(map[eventv1.EventType]int)
	for _, record := range records {
		counts[record.Type]++
	}

	log.Printf("--- Summary ---")
	log.Printf("Total Records: %d", len(records))
	for _, eventType := range []eventv1.EventType{
		eventv1.TypeLotCreated,
		eventv1.TypeBidPlaced,
		eventv1.TypeLotSettled,
		eventv1.TypeBidsClaimed,
		eventv1.TypeProceedsClaimed,
		eventv1.TypeLotCancelled,
	} {
		if counts[eventType] > 0 {
			log.Printf("%s: %d", eventType, counts[eventType])
		}
	}
}
