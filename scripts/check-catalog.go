package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	redisclient "github.com/KirkDiggler/rpg-skill-simulator/internal/redis"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog"
)

// damagedItem is a catalog hash whose skills field needs rewriting
type damagedItem struct {
	key    string
	raw    string
	skills []byte
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redisclient.NewClientFromURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	ctx := context.Background()

	if err := redisclient.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning catalog items for damaged skills...")

	var damaged []damagedItem
	var checkedCount int

	// skill master hashes have no skills field
	var keys []string
	for _, entityType := range []string{equipment.EntityTypeArmor, equipment.EntityTypeWeapon} {
		iter := client.Scan(ctx, 0, catalog.ItemKey(entityType, "*"), 0).Iterator()
		for iter.Next(ctx) {
			if key := iter.Val(); !strings.HasSuffix(key, ":index") {
				keys = append(keys, key)
			}
		}
		if err := iter.Err(); err != nil {
			log.Fatal("Error during scan:", err)
		}
	}

	for _, key := range keys {
		checkedCount++

		raw, err := client.HGet(ctx, key, "skills").Result()
		if err == redis.Nil {
			raw = ""
		} else if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		trimmed := bytes.TrimSpace([]byte(raw))
		skills, ok := catalog.ParseSkills(trimmed)
		// String-encoded arrays parse fine but are rewritten as plain arrays
		if ok && (len(trimmed) == 0 || trimmed[0] != '"') {
			continue
		}

		normalized, err := json.Marshal(skills)
		if err != nil {
			fmt.Printf("Error encoding skills for %s: %v\n", key, err)
			continue
		}

		fmt.Printf("✗ %s: skills is %s\n", key, raw)
		damaged = append(damaged, damagedItem{key: key, raw: raw, skills: normalized})
	}

	fmt.Printf("\nChecked %d items, found %d with damaged skills\n", checkedCount, len(damaged))

	if len(damaged) == 0 {
		fmt.Println("No damaged items found!")
		return
	}

	fmt.Println("\nProposed rewrites:")
	for _, item := range damaged {
		fmt.Printf("  - %s: %s -> %s\n", item.key, item.raw, item.skills)
	}

	fmt.Print("\nDo you want to REWRITE these skills fields? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response == "yes" {
		for _, item := range damaged {
			if err := client.HSet(ctx, item.key, "skills", string(item.skills)).Err(); err != nil {
				fmt.Printf("Failed to rewrite %s: %v\n", item.key, err)
			} else {
				fmt.Printf("Rewrote %s\n", item.key)
			}
		}
		fmt.Println("\nRepair complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
