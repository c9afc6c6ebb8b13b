package main

import (
	"flag"
	"log"

	"BitKV/bootstrap"
)

func main() {
	flag.Parse()
	if _, err := bootstrap.Run(); err != nil {
		log.Fatal("Failed to start:", err)
	}
}
