// Command check-catalog scans redis for stored effect catalogs and reports
// records that would make the server refuse to start or behave oddly.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/reliquary-api/internal/catalog"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	pattern := os.Getenv("CATALOG_KEY_PATTERN")
	if pattern == "" {
		pattern = "reliquary:catalog:*"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", opt.Addr)
	fmt.Println("Scanning for catalogs matching", pattern)

	iter := client.Scan(ctx, 0, pattern, 0).Iterator()

	var broken []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		effects, err := catalog.DecodeJSON(bytes.NewReader(data))
		if err != nil {
			fmt.Printf("✗ %s does not decode: %v\n", key, err)
			broken = append(broken, key)
			continue
		}

		if _, err := catalog.New(effects); err != nil {
			fmt.Printf("✗ %s would be rejected at startup: %v\n", key, err)
			broken = append(broken, key)
			continue
		}

		report(key, effects)
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, %d unusable\n", checkedCount, len(broken))
	if len(broken) > 0 {
		os.Exit(1)
	}
}

func report(key string, effects []*reliquary.Effect) {
	byType := make(map[reliquary.RelicType]int)
	groups := make(map[string]int)
	var unordered []string

	for _, e := range effects {
		byType[e.RelicType]++
		if e.HasCompatibilityGroup() {
			groups[e.CompatibilityID]++
		}
		if e.RollOrder == nil {
			unordered = append(unordered, e.ID)
		}
	}

	fmt.Printf("✓ %s: %d effects\n", key, len(effects))

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		label := t
		if label == "" {
			label = "(unknown)"
		}
		fmt.Printf("    %-14s %d\n", label, byType[reliquary.RelicType(t)])
	}

	fmt.Printf("    %d compatibility groups\n", len(groups))
	if byType[reliquary.RelicTypeUnknown] > 0 {
		fmt.Printf("    note: %d effects of unknown type only appear under All\n", byType[reliquary.RelicTypeUnknown])
	}
	if len(unordered) > 0 {
		fmt.Printf("    note: %d effects without a roll order sort last: %v\n", len(unordered), unordered)
	}
}
